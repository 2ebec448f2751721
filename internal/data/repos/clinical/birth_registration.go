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

type BirthRegistrationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, registrations []*types.BirthRegistration) ([]*types.BirthRegistration, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BirthRegistration, error)
	GetByRegistrationNumber(ctx context.Context, tx *gorm.DB, number string) (*types.BirthRegistration, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, status enums.RegistrationStatus, limit int) ([]*types.BirthRegistration, error)
	SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status enums.RegistrationStatus, reviewerID uuid.UUID, rejectionReason string) error
	LinkPatient(ctx context.Context, tx *gorm.DB, id, patientID uuid.UUID) error
}

type birthRegistrationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBirthRegistrationRepo(gdb *gorm.DB, baseLog *logger.Logger) BirthRegistrationRepo {
	return &birthRegistrationRepo{db: gdb, log: baseLog.With("repo", "BirthRegistrationRepo")}
}

func (br *birthRegistrationRepo) Create(ctx context.Context, tx *gorm.DB, registrations []*types.BirthRegistration) ([]*types.BirthRegistration, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	if len(registrations) == 0 {
		return []*types.BirthRegistration{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&registrations).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return registrations, nil
}

func (br *birthRegistrationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BirthRegistration, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.BirthRegistration
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

func (br *birthRegistrationRepo) GetByRegistrationNumber(ctx context.Context, tx *gorm.DB, number string) (*types.BirthRegistration, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var result types.BirthRegistration
	if err := transaction.WithContext(ctx).
		Where("registration_number = ?", number).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (br *birthRegistrationRepo) ListByStatus(ctx context.Context, tx *gorm.DB, status enums.RegistrationStatus, limit int) ([]*types.BirthRegistration, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.BirthRegistration
	if err := transaction.WithContext(ctx).
		Where("registration_status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

// SetStatus records the reviewing actor alongside the decision. Rejections
// must say why; the reason column stays empty otherwise.
func (br *birthRegistrationRepo) SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status enums.RegistrationStatus, reviewerID uuid.UUID, rejectionReason string) error {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	if !status.Valid() {
		return fmt.Errorf("%w: registration_status %q", bhnerr.ErrEnumViolation, status)
	}
	if status == enums.RegistrationStatusRejected && rejectionReason == "" {
		return fmt.Errorf("%w: rejection requires a reason", bhnerr.ErrInvalidArgument)
	}
	updates := map[string]any{
		"registration_status": status,
		"reviewed_by_user_id": reviewerID,
		"reviewed_at":         time.Now().UTC(),
		"rejection_reason":    rejectionReason,
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.BirthRegistration{}).
		Where("id = ?", id).
		Updates(updates).Error)
}

func (br *birthRegistrationRepo) LinkPatient(ctx context.Context, tx *gorm.DB, id, patientID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.BirthRegistration{}).
		Where("id = ?", id).
		Update("patient_id", patientID).Error)
}
