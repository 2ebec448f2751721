package identity_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	identityrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/identity"
	"github.com/birthhealthnetwork/bhn-backend/internal/data/repos/testutil"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
)

func TestFacilitySearchByName(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := identityrepo.NewFacilityRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	marker := uuid.New().String()[:8]
	_, err := repo.Create(ctx, tx, []*types.HealthcareFacility{
		{Name: "St. Mary Maternity " + marker},
		{Name: "Riverside Clinic " + marker},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.SearchByName(ctx, tx, "maternity "+marker, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d facilities, want 1", len(got))
	}
}

func TestFacilitySetActive(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := identityrepo.NewFacilityRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	f := testutil.SeedFacility(t, tx)
	if !f.IsActive {
		t.Fatal("facility should default to active")
	}
	if err := repo.SetActive(ctx, tx, f.ID, false); err != nil {
		t.Fatalf("set active: %v", err)
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{f.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].IsActive {
		t.Fatal("facility still active after SetActive(false)")
	}
}
