// Package testutil wires repository tests to a real Postgres instance.
// Tests run inside a transaction that is rolled back afterwards, so a
// single shared database stays clean across packages.
package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

var (
	once    sync.Once
	shared  *gorm.DB
	initErr error
)

// DB opens the database named by TEST_POSTGRES_DSN once per process and
// runs the full migration pass against it. Tests are skipped when the
// variable is unset, so `go test ./...` stays green without a database.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		tb.Skip("TEST_POSTGRES_DSN not set")
	}
	once.Do(func() {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
			DisableForeignKeyConstraintWhenMigrating: true,
		})
		if err != nil {
			initErr = err
			return
		}
		for _, step := range []func(*gorm.DB) error{
			db.EnsureExtensions,
			db.EnsureEnumTypes,
			db.AutoMigrateAll,
			db.EnsureForeignKeys,
			db.EnsureCheckConstraints,
			db.EnsureIndexes,
			db.EnsureTimestampTriggers,
			db.EnsureRowLevelSecurity,
		} {
			if err := step(gdb); err != nil {
				initErr = err
				return
			}
		}
		shared = gdb
	})
	if initErr != nil {
		tb.Fatalf("test database setup: %v", initErr)
	}
	return shared
}

// Tx hands the test a transaction rolled back on cleanup. Note that now()
// inside the transaction is pinned to its start time; tests that assert on
// trigger-set timestamps should write through the bare DB handle instead.
func Tx(tb testing.TB, gdb *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin transaction: %v", tx.Error)
	}
	tb.Cleanup(func() { tx.Rollback() })
	return tx
}

// Logger returns a quiet logger for constructing repos under test.
func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	lg, err := logger.New("test")
	if err != nil {
		tb.Fatalf("logger: %v", err)
	}
	return lg
}
