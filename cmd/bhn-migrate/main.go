// Command bhn-migrate brings a Postgres database up to the current schema:
// extensions, enum types, tables, constraints, indexes, triggers and the
// row-level security scaffolding. With -seed it also writes the default
// settings, the bootstrap admin and the initial facility.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
	"github.com/birthhealthnetwork/bhn-backend/internal/platform/envutil"
)

func main() {
	var seed bool
	flag.BoolVar(&seed, "seed", false, "insert default settings, admin user and initial facility after migrating")
	flag.Parse()

	log, err := logger.New(envutil.String("APP_ENV", "dev"))
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}

	if err := pg.AutoMigrateAll(); err != nil {
		log.Error("migrate", "error", err)
		os.Exit(1)
	}
	log.Info("schema up to date")

	if seed {
		if err := pg.Seed(context.Background()); err != nil {
			log.Error("seed", "error", err)
			os.Exit(1)
		}
		log.Info("seed data in place")
	}
}
