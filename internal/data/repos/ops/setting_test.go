package ops_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	opsrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/ops"
	"github.com/birthhealthnetwork/bhn-backend/internal/data/repos/testutil"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

func TestSettingKeyUnique(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewSettingRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	key := fmt.Sprintf("test.key.%d", testutil.NextSeq())
	_, err := repo.Create(ctx, tx, []*types.SystemSetting{{SettingKey: key, SettingValue: "1"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = tx.Transaction(func(inner *gorm.DB) error {
		_, err := repo.Create(ctx, inner, []*types.SystemSetting{{SettingKey: key, SettingValue: "2"}})
		return err
	})
	if !errors.Is(err, bhnerr.ErrUniqueViolation) {
		t.Fatalf("duplicate key: got %v, want ErrUniqueViolation", err)
	}
}

func TestSettingGetAndSet(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewSettingRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	key := fmt.Sprintf("test.key.%d", testutil.NextSeq())
	created, err := repo.Create(ctx, tx, []*types.SystemSetting{{
		SettingKey:   key,
		SettingValue: "30",
		ValueType:    "integer",
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created[0].IsPublic {
		t.Fatal("settings should default to private")
	}

	if err := repo.Set(ctx, tx, key, "45"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := repo.Get(ctx, tx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SettingValue != "45" || got.ValueType != "integer" {
		t.Fatalf("setting not updated: %+v", got)
	}

	if _, err := repo.Get(ctx, tx, "test.key.missing"); !errors.Is(err, bhnerr.ErrNotFound) {
		t.Fatalf("missing key: got %v, want ErrNotFound", err)
	}
}

func TestSettingListPublic(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewSettingRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	prefix := fmt.Sprintf("test.vis.%d", testutil.NextSeq())
	_, err := repo.Create(ctx, tx, []*types.SystemSetting{
		{SettingKey: prefix + ".public", SettingValue: "yes", IsPublic: true},
		{SettingKey: prefix + ".private", SettingValue: "no"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	public, err := repo.ListPublic(ctx, tx)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	for _, s := range public {
		if !s.IsPublic {
			t.Fatalf("private setting %q leaked into public listing", s.SettingKey)
		}
	}

	all, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) < 2 {
		t.Fatalf("got %d settings, want at least 2", len(all))
	}
}
