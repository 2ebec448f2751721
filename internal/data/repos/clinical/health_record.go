package clinical

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type HealthRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.HealthRecord) ([]*types.HealthRecord, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.HealthRecord, error)
	ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, limit int) ([]*types.HealthRecord, error)
	ListByPatientAndType(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, recordType enums.RecordType, limit int) ([]*types.HealthRecord, error)
	SetUrgency(ctx context.Context, tx *gorm.DB, id uuid.UUID, urgency enums.UrgencyLevel) error
}

type healthRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthRecordRepo(gdb *gorm.DB, baseLog *logger.Logger) HealthRecordRepo {
	return &healthRecordRepo{db: gdb, log: baseLog.With("repo", "HealthRecordRepo")}
}

func (hr *healthRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.HealthRecord) ([]*types.HealthRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	if len(records) == 0 {
		return []*types.HealthRecord{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return records, nil
}

func (hr *healthRecordRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.HealthRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	var results []*types.HealthRecord
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

func (hr *healthRecordRepo) ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, limit int) ([]*types.HealthRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.HealthRecord
	if err := transaction.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("record_date DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (hr *healthRecordRepo) ListByPatientAndType(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, recordType enums.RecordType, limit int) ([]*types.HealthRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.HealthRecord
	if err := transaction.WithContext(ctx).
		Where("patient_id = ? AND record_type = ?", patientID, recordType).
		Order("record_date DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (hr *healthRecordRepo) SetUrgency(ctx context.Context, tx *gorm.DB, id uuid.UUID, urgency enums.UrgencyLevel) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if !urgency.Valid() {
		return fmt.Errorf("%w: urgency %q", bhnerr.ErrEnumViolation, urgency)
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.HealthRecord{}).
		Where("id = ?", id).
		Update("urgency", urgency).Error)
}
