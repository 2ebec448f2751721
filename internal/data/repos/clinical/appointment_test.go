package clinical_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clinicalrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/clinical"
	"github.com/birthhealthnetwork/bhn-backend/internal/data/repos/testutil"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

func TestAppointmentDefaults(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewAppointmentRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	d := testutil.SeedDoctor(t, tx)

	created, err := repo.Create(ctx, tx, []*types.Appointment{{
		PatientID:       p.ID,
		DoctorID:        d.ID,
		AppointmentType: enums.AppointmentTypeConsultation,
		ScheduledAt:     time.Now().UTC().Add(48 * time.Hour),
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Status != enums.AppointmentScheduled {
		t.Fatalf("status = %q, want scheduled default", got[0].Status)
	}
	if got[0].DurationMinutes != 30 {
		t.Fatalf("duration_minutes = %d, want 30 default", got[0].DurationMinutes)
	}
}

func TestAppointmentDurationMustBePositive(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewAppointmentRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	d := testutil.SeedDoctor(t, tx)

	err := tx.Transaction(func(inner *gorm.DB) error {
		_, err := repo.Create(ctx, inner, []*types.Appointment{{
			PatientID:       p.ID,
			DoctorID:        d.ID,
			AppointmentType: enums.AppointmentTypeCheckup,
			ScheduledAt:     time.Now().UTC(),
			DurationMinutes: -15,
		}})
		return err
	})
	if !errors.Is(err, bhnerr.ErrCheckViolation) {
		t.Fatalf("negative duration: got %v, want ErrCheckViolation", err)
	}
}

func TestAppointmentStatusTransitions(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewAppointmentRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	d := testutil.SeedDoctor(t, tx)
	a := testutil.SeedAppointment(t, tx, p.ID, d.ID)

	if err := repo.SetStatus(ctx, tx, a.ID, enums.AppointmentConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := repo.SetStatus(ctx, tx, a.ID, "postponed"); !errors.Is(err, bhnerr.ErrEnumViolation) {
		t.Fatalf("bogus status: got %v, want ErrEnumViolation", err)
	}

	if err := repo.Cancel(ctx, tx, a.ID, "patient request"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{a.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Status != enums.AppointmentCancelled {
		t.Fatalf("status = %q, want cancelled", got[0].Status)
	}
	if got[0].CancellationReason != "patient request" {
		t.Fatalf("cancellation_reason = %q", got[0].CancellationReason)
	}
}

func TestAppointmentDoctorSchedule(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := clinicalrepo.NewAppointmentRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPatient(t, tx)
	d := testutil.SeedDoctor(t, tx)

	base := time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{0, 2 * time.Hour, 72 * time.Hour} {
		_, err := repo.Create(ctx, tx, []*types.Appointment{{
			PatientID:       p.ID,
			DoctorID:        d.ID,
			AppointmentType: enums.AppointmentTypeFollowUp,
			ScheduledAt:     base.Add(offset),
		}})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	day, err := repo.ListByDoctorBetween(ctx, tx, d.ID, base.Add(-time.Hour), base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("got %d appointments in window, want 2", len(day))
	}

	if err := repo.MarkReminderSent(ctx, tx, day[0].ID); err != nil {
		t.Fatalf("mark reminder: %v", err)
	}
}
