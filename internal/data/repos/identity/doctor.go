package identity

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type DoctorRepo interface {
	Create(ctx context.Context, tx *gorm.DB, doctors []*types.Doctor) ([]*types.Doctor, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, doctorIDs []uuid.UUID) ([]*types.Doctor, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Doctor, error)
	GetByLicenseNumber(ctx context.Context, tx *gorm.DB, licenseNumber string) (*types.Doctor, error)
	SetVerified(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, verified bool) error
	AssignFacility(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, facilityID *uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID) error
}

type doctorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDoctorRepo(gdb *gorm.DB, baseLog *logger.Logger) DoctorRepo {
	return &doctorRepo{db: gdb, log: baseLog.With("repo", "DoctorRepo")}
}

func (dr *doctorRepo) Create(ctx context.Context, tx *gorm.DB, doctors []*types.Doctor) ([]*types.Doctor, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if len(doctors) == 0 {
		return []*types.Doctor{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&doctors).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return doctors, nil
}

func (dr *doctorRepo) GetByIDs(ctx context.Context, tx *gorm.DB, doctorIDs []uuid.UUID) ([]*types.Doctor, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.Doctor
	if len(doctorIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", doctorIDs).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (dr *doctorRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Doctor, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var result types.Doctor
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (dr *doctorRepo) GetByLicenseNumber(ctx context.Context, tx *gorm.DB, licenseNumber string) (*types.Doctor, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var result types.Doctor
	if err := transaction.WithContext(ctx).
		Where("license_number = ?", licenseNumber).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (dr *doctorRepo) SetVerified(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, verified bool) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Doctor{}).
		Where("id = ?", doctorID).
		Update("is_verified", verified).Error)
}

func (dr *doctorRepo) AssignFacility(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, facilityID *uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Doctor{}).
		Where("id = ?", doctorID).
		Update("facility_id", facilityID).Error)
}

// Delete fails with a foreign key violation while any patient still points
// at the doctor through primary_doctor_id; the reference must be cleared
// first. Appointments, by contrast, cascade.
func (dr *doctorRepo) Delete(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Where("id = ?", doctorID).
		Delete(&types.Doctor{}).Error)
}
