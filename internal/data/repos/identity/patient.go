package identity

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type PatientRepo interface {
	Create(ctx context.Context, tx *gorm.DB, patients []*types.Patient) ([]*types.Patient, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, patientIDs []uuid.UUID) ([]*types.Patient, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Patient, error)
	GetByBHNID(ctx context.Context, tx *gorm.DB, bhnID string) (*types.Patient, error)
	SetPrimaryDoctor(ctx context.Context, tx *gorm.DB, patientID, doctorID uuid.UUID) error
	ClearPrimaryDoctor(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) error
	UpdateInsurance(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, provider, policyNumber string) error
}

type patientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPatientRepo(gdb *gorm.DB, baseLog *logger.Logger) PatientRepo {
	return &patientRepo{db: gdb, log: baseLog.With("repo", "PatientRepo")}
}

func (pr *patientRepo) Create(ctx context.Context, tx *gorm.DB, patients []*types.Patient) ([]*types.Patient, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(patients) == 0 {
		return []*types.Patient{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&patients).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return patients, nil
}

func (pr *patientRepo) GetByIDs(ctx context.Context, tx *gorm.DB, patientIDs []uuid.UUID) ([]*types.Patient, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Patient
	if len(patientIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", patientIDs).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (pr *patientRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Patient, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Patient
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (pr *patientRepo) GetByBHNID(ctx context.Context, tx *gorm.DB, bhnID string) (*types.Patient, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Patient
	if err := transaction.WithContext(ctx).
		Where("bhn_id = ?", bhnID).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (pr *patientRepo) SetPrimaryDoctor(ctx context.Context, tx *gorm.DB, patientID, doctorID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Patient{}).
		Where("id = ?", patientID).
		Update("primary_doctor_id", doctorID).Error)
}

func (pr *patientRepo) ClearPrimaryDoctor(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Patient{}).
		Where("id = ?", patientID).
		Update("primary_doctor_id", nil).Error)
}

func (pr *patientRepo) UpdateInsurance(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, provider, policyNumber string) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Patient{}).
		Where("id = ?", patientID).
		Updates(map[string]any{
			"insurance_provider":      provider,
			"insurance_policy_number": policyNumber,
		}).Error)
}
