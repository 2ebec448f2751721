package identity

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type UserProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, profiles []*types.UserProfile) ([]*types.UserProfile, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserProfile, error)
	UpdateContact(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, emergencyName, emergencyPhone string) error
	UpdateAddress(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, line1, line2, city, state, postalCode, country string) error
}

type userProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserProfileRepo(gdb *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
	return &userProfileRepo{db: gdb, log: baseLog.With("repo", "UserProfileRepo")}
}

func (pr *userProfileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.UserProfile) ([]*types.UserProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(profiles) == 0 {
		return []*types.UserProfile{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return profiles, nil
}

func (pr *userProfileRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.UserProfile
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (pr *userProfileRepo) UpdateContact(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, emergencyName, emergencyPhone string) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.UserProfile{}).
		Where("id = ?", profileID).
		Updates(map[string]any{
			"emergency_contact_name":  emergencyName,
			"emergency_contact_phone": emergencyPhone,
		}).Error)
}

func (pr *userProfileRepo) UpdateAddress(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, line1, line2, city, state, postalCode, country string) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.UserProfile{}).
		Where("id = ?", profileID).
		Updates(map[string]any{
			"address_line1": line1,
			"address_line2": line2,
			"city":          city,
			"state":         state,
			"postal_code":   postalCode,
			"country":       country,
		}).Error)
}
