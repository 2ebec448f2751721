package clinical

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type MedicationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, medications []*types.Medication) ([]*types.Medication, error)
	ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) ([]*types.Medication, error)
	ListActiveByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) ([]*types.Medication, error)
	Deactivate(ctx context.Context, tx *gorm.DB, medicationID uuid.UUID) error
}

type medicationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMedicationRepo(gdb *gorm.DB, baseLog *logger.Logger) MedicationRepo {
	return &medicationRepo{db: gdb, log: baseLog.With("repo", "MedicationRepo")}
}

func (mr *medicationRepo) Create(ctx context.Context, tx *gorm.DB, medications []*types.Medication) ([]*types.Medication, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(medications) == 0 {
		return []*types.Medication{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&medications).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return medications, nil
}

func (mr *medicationRepo) ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) ([]*types.Medication, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.Medication
	if err := transaction.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (mr *medicationRepo) ListActiveByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) ([]*types.Medication, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.Medication
	if err := transaction.WithContext(ctx).
		Where("patient_id = ? AND is_active", patientID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (mr *medicationRepo) Deactivate(ctx context.Context, tx *gorm.DB, medicationID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Medication{}).
		Where("id = ?", medicationID).
		Update("is_active", false).Error)
}
