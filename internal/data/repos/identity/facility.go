package identity

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type FacilityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, facilities []*types.HealthcareFacility) ([]*types.HealthcareFacility, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, facilityIDs []uuid.UUID) ([]*types.HealthcareFacility, error)
	SearchByName(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.HealthcareFacility, error)
	SetActive(ctx context.Context, tx *gorm.DB, facilityID uuid.UUID, active bool) error
}

type facilityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFacilityRepo(gdb *gorm.DB, baseLog *logger.Logger) FacilityRepo {
	return &facilityRepo{db: gdb, log: baseLog.With("repo", "FacilityRepo")}
}

func (fr *facilityRepo) Create(ctx context.Context, tx *gorm.DB, facilities []*types.HealthcareFacility) ([]*types.HealthcareFacility, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if len(facilities) == 0 {
		return []*types.HealthcareFacility{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&facilities).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return facilities, nil
}

func (fr *facilityRepo) GetByIDs(ctx context.Context, tx *gorm.DB, facilityIDs []uuid.UUID) ([]*types.HealthcareFacility, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.HealthcareFacility
	if len(facilityIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", facilityIDs).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

// SearchByName matches case-insensitively on a substring; the trigram index
// keeps this cheap for fuzzy lookups.
func (fr *facilityRepo) SearchByName(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.HealthcareFacility, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if limit <= 0 {
		limit = 20
	}

	var results []*types.HealthcareFacility
	if err := transaction.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (fr *facilityRepo) SetActive(ctx context.Context, tx *gorm.DB, facilityID uuid.UUID, active bool) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.HealthcareFacility{}).
		Where("id = ?", facilityID).
		Update("is_active", active).Error)
}
