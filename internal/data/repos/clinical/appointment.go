package clinical

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type AppointmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, appointments []*types.Appointment) ([]*types.Appointment, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Appointment, error)
	ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, limit int) ([]*types.Appointment, error)
	ListByDoctorBetween(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]*types.Appointment, error)
	SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status enums.AppointmentStatus) error
	Cancel(ctx context.Context, tx *gorm.DB, id uuid.UUID, reason string) error
	MarkReminderSent(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type appointmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAppointmentRepo(gdb *gorm.DB, baseLog *logger.Logger) AppointmentRepo {
	return &appointmentRepo{db: gdb, log: baseLog.With("repo", "AppointmentRepo")}
}

func (ar *appointmentRepo) Create(ctx context.Context, tx *gorm.DB, appointments []*types.Appointment) ([]*types.Appointment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(appointments) == 0 {
		return []*types.Appointment{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&appointments).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return appointments, nil
}

func (ar *appointmentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Appointment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Appointment
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (ar *appointmentRepo) ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, limit int) ([]*types.Appointment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.Appointment
	if err := transaction.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("scheduled_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (ar *appointmentRepo) ListByDoctorBetween(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]*types.Appointment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Appointment
	if err := transaction.WithContext(ctx).
		Where("doctor_id = ? AND scheduled_at >= ? AND scheduled_at < ?", doctorID, from, to).
		Order("scheduled_at").
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (ar *appointmentRepo) SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status enums.AppointmentStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if !status.Valid() {
		return fmt.Errorf("%w: appointment status %q", bhnerr.ErrEnumViolation, status)
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error)
}

func (ar *appointmentRepo) Cancel(ctx context.Context, tx *gorm.DB, id uuid.UUID, reason string) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              enums.AppointmentCancelled,
			"cancellation_reason": reason,
		}).Error)
}

func (ar *appointmentRepo) MarkReminderSent(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Appointment{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error)
}
