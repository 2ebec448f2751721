package clinical

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type LabResultRepo interface {
	Create(ctx context.Context, tx *gorm.DB, results []*types.LabResult) ([]*types.LabResult, error)
	ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, limit int) ([]*types.LabResult, error)
	ListByHealthRecord(ctx context.Context, tx *gorm.DB, healthRecordID uuid.UUID) ([]*types.LabResult, error)
}

type labResultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLabResultRepo(gdb *gorm.DB, baseLog *logger.Logger) LabResultRepo {
	return &labResultRepo{db: gdb, log: baseLog.With("repo", "LabResultRepo")}
}

func (lr *labResultRepo) Create(ctx context.Context, tx *gorm.DB, results []*types.LabResult) ([]*types.LabResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if len(results) == 0 {
		return []*types.LabResult{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (lr *labResultRepo) ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, limit int) ([]*types.LabResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.LabResult
	if err := transaction.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (lr *labResultRepo) ListByHealthRecord(ctx context.Context, tx *gorm.DB, healthRecordID uuid.UUID) ([]*types.LabResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LabResult
	if err := transaction.WithContext(ctx).
		Where("health_record_id = ?", healthRecordID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}
