package clinical_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	clinicalrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/clinical"
	"github.com/birthhealthnetwork/bhn-backend/internal/data/repos/testutil"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

func TestHealthRecordDefaultsAndListing(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewHealthRecordRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)

	created, err := repo.Create(ctx, tx, []*types.HealthRecord{
		{PatientID: p.ID, RecordType: enums.RecordTypeConsultation, Title: "Initial visit", RecordDate: time.Now().UTC()},
		{PatientID: p.ID, RecordType: enums.RecordTypeLabResult, Title: "Blood panel", RecordDate: time.Now().UTC()},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created[0].Urgency != enums.UrgencyNormal {
		t.Fatalf("urgency = %q, want normal default", created[0].Urgency)
	}

	all, err := repo.ListByPatient(ctx, tx, p.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d records, want 2", len(all))
	}

	labs, err := repo.ListByPatientAndType(ctx, tx, p.ID, enums.RecordTypeLabResult, 0)
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(labs) != 1 || labs[0].Title != "Blood panel" {
		t.Fatalf("list by type returned %d records", len(labs))
	}
}

func TestHealthRecordRejectsUnknownType(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewHealthRecordRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	_, err := repo.Create(ctx, tx, []*types.HealthRecord{
		{PatientID: p.ID, RecordType: "horoscope", Title: "Nope", RecordDate: time.Now().UTC()},
	})
	if !errors.Is(err, bhnerr.ErrEnumViolation) {
		t.Fatalf("got %v, want ErrEnumViolation", err)
	}
}

func TestHealthRecordSetUrgency(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewHealthRecordRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	r := testutil.SeedHealthRecord(t, tx, p.ID)

	if err := repo.SetUrgency(ctx, tx, r.ID, enums.UrgencyCritical); err != nil {
		t.Fatalf("set urgency: %v", err)
	}
	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{r.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Urgency != enums.UrgencyCritical {
		t.Fatalf("urgency = %q, want critical", got[0].Urgency)
	}

	if err := repo.SetUrgency(ctx, tx, r.ID, "mauve"); !errors.Is(err, bhnerr.ErrEnumViolation) {
		t.Fatalf("bogus urgency: got %v, want ErrEnumViolation", err)
	}
}

// Removing a patient takes their clinical rows with them: records cascade
// directly, medications and lab results cascade both through the patient
// and through their linked record.
func TestClinicalRowsCascadeWithPatient(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	p := testutil.SeedPatient(t, tx)
	d := testutil.SeedDoctor(t, tx)
	r := testutil.SeedHealthRecord(t, tx, p.ID)
	testutil.SeedAppointment(t, tx, p.ID, d.ID)

	med := &types.Medication{PatientID: p.ID, HealthRecordID: &r.ID, MedicationName: "Folic acid"}
	if err := tx.Create(med).Error; err != nil {
		t.Fatalf("seed medication: %v", err)
	}
	lab := &types.LabResult{PatientID: p.ID, HealthRecordID: &r.ID, TestName: "CBC"}
	if err := tx.Create(lab).Error; err != nil {
		t.Fatalf("seed lab result: %v", err)
	}

	if err := tx.Delete(&types.Patient{}, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	for _, probe := range []struct {
		name  string
		model any
	}{
		{"health record", &types.HealthRecord{}},
		{"medication", &types.Medication{}},
		{"lab result", &types.LabResult{}},
		{"appointment", &types.Appointment{}},
	} {
		var n int64
		if err := tx.Model(probe.model).Where("patient_id = ?", p.ID).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", probe.name, err)
		}
		if n != 0 {
			t.Fatalf("%s rows survived patient delete: %d", probe.name, n)
		}
	}
}

func TestMedicationLifecycle(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewMedicationRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	created, err := repo.Create(ctx, tx, []*types.Medication{
		{PatientID: p.ID, MedicationName: "Iron supplement", Dosage: "65mg", Frequency: "daily"},
		{PatientID: p.ID, MedicationName: "Vitamin D", Dosage: "1000IU", Frequency: "daily"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Deactivate(ctx, tx, created[0].ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := repo.ListActiveByPatient(ctx, tx, p.ID)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].MedicationName != "Vitamin D" {
		t.Fatalf("got %d active medications", len(active))
	}

	all, err := repo.ListByPatient(ctx, tx, p.ID)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d medications, want 2", len(all))
	}
}

func TestLabResultListing(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewLabResultRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	r := testutil.SeedHealthRecord(t, tx, p.ID)

	_, err := repo.Create(ctx, tx, []*types.LabResult{
		{PatientID: p.ID, HealthRecordID: &r.ID, TestName: "Hemoglobin", ResultValue: "13.5", Unit: "g/dL"},
		{PatientID: p.ID, TestName: "Glucose", ResultValue: "90", Unit: "mg/dL"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byRecord, err := repo.ListByHealthRecord(ctx, tx, r.ID)
	if err != nil {
		t.Fatalf("list by record: %v", err)
	}
	if len(byRecord) != 1 || byRecord[0].TestName != "Hemoglobin" {
		t.Fatalf("got %d results for record", len(byRecord))
	}

	byPatient, err := repo.ListByPatient(ctx, tx, p.ID, 0)
	if err != nil {
		t.Fatalf("list by patient: %v", err)
	}
	if len(byPatient) != 2 {
		t.Fatalf("got %d results for patient, want 2", len(byPatient))
	}
}
