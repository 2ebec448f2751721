package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status enums.UserStatus) error
	RecordFailedLogin(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lockedUntil *time.Time) error
	ResetLoginFailures(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	TouchLastLogin(ctx context.Context, tx *gorm.DB, userID uuid.UUID, at time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(gdb *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: gdb, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	if len(users) == 0 {
		return []*types.User{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&users).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return users, nil
}

func (ur *userRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []*types.User
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var result types.User
	if err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, db.ClassifyError(err)
	}
	return count > 0, nil
}

func (ur *userRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status enums.UserStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("status", status).Error)
}

func (ur *userRepo) RecordFailedLogin(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lockedUntil *time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	updates := map[string]any{
		"failed_login_attempts": gorm.Expr("failed_login_attempts + 1"),
	}
	if lockedUntil != nil {
		updates["locked_until"] = *lockedUntil
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(updates).Error)
}

func (ur *userRepo) ResetLoginFailures(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"failed_login_attempts": 0,
			"locked_until":          nil,
		}).Error)
}

func (ur *userRepo) TouchLastLogin(ctx context.Context, tx *gorm.DB, userID uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("last_login_at", at).Error)
}

// Delete removes the user row; profile, role rows, sessions and
// notifications go with it through the cascade edges.
func (ur *userRepo) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&types.User{}).Error)
}
