package identity_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	identityrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/identity"
	"github.com/birthhealthnetwork/bhn-backend/internal/data/repos/testutil"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

func TestDoctorLicenseUnique(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := identityrepo.NewDoctorRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	d := testutil.SeedDoctor(t, tx)

	got, err := repo.GetByLicenseNumber(ctx, tx, d.LicenseNumber)
	if err != nil {
		t.Fatalf("get by license: %v", err)
	}
	if got.ID != d.ID {
		t.Fatalf("got %s, want %s", got.ID, d.ID)
	}

	other := testutil.SeedUser(t, tx, "doctor")
	_, err = repo.Create(ctx, tx, []*types.Doctor{{
		UserID:        other.ID,
		LicenseNumber: d.LicenseNumber,
	}})
	if !errors.Is(err, bhnerr.ErrUniqueViolation) {
		t.Fatalf("duplicate license: got %v, want ErrUniqueViolation", err)
	}
}

// A doctor referenced as someone's primary doctor cannot be deleted until
// the pointer is cleared; the plain FK has no cascade action.
func TestDoctorDeleteBlockedByPrimaryPatient(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	doctorRepo := identityrepo.NewDoctorRepo(gdb, testutil.Logger(t))
	patientRepo := identityrepo.NewPatientRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	d := testutil.SeedDoctor(t, tx)
	p := testutil.SeedPatient(t, tx)
	if err := patientRepo.SetPrimaryDoctor(ctx, tx, p.ID, d.ID); err != nil {
		t.Fatalf("set primary doctor: %v", err)
	}

	// Savepoint keeps the expected failure from aborting the outer test
	// transaction.
	err := tx.Transaction(func(inner *gorm.DB) error {
		return doctorRepo.Delete(ctx, inner, d.ID)
	})
	if !errors.Is(err, bhnerr.ErrForeignKeyViolation) {
		t.Fatalf("delete referenced doctor: got %v, want ErrForeignKeyViolation", err)
	}

	if err := patientRepo.ClearPrimaryDoctor(ctx, tx, p.ID); err != nil {
		t.Fatalf("clear primary doctor: %v", err)
	}
	if err := doctorRepo.Delete(ctx, tx, d.ID); err != nil {
		t.Fatalf("delete after clear: %v", err)
	}
}

func TestDoctorFacilityAssignment(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := identityrepo.NewDoctorRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	d := testutil.SeedDoctor(t, tx)
	f := testutil.SeedFacility(t, tx)

	if err := repo.AssignFacility(ctx, tx, d.ID, &f.ID); err != nil {
		t.Fatalf("assign facility: %v", err)
	}
	got, err := repo.GetByUserID(ctx, tx, d.UserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FacilityID == nil || *got.FacilityID != f.ID {
		t.Fatalf("facility_id = %v, want %s", got.FacilityID, f.ID)
	}

	// Facility delete is blocked while the doctor points at it.
	err = tx.Transaction(func(inner *gorm.DB) error {
		return inner.Delete(&types.HealthcareFacility{}, "id = ?", f.ID).Error
	})
	if err == nil {
		t.Fatal("facility delete should be rejected while referenced")
	}
}
