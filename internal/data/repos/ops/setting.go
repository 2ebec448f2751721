package ops

import (
	"context"

	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type SettingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, settings []*types.SystemSetting) ([]*types.SystemSetting, error)
	Get(ctx context.Context, tx *gorm.DB, key string) (*types.SystemSetting, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.SystemSetting, error)
	ListPublic(ctx context.Context, tx *gorm.DB) ([]*types.SystemSetting, error)
	Set(ctx context.Context, tx *gorm.DB, key, value string) error
}

type settingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSettingRepo(gdb *gorm.DB, baseLog *logger.Logger) SettingRepo {
	return &settingRepo{db: gdb, log: baseLog.With("repo", "SettingRepo")}
}

func (sr *settingRepo) Create(ctx context.Context, tx *gorm.DB, settings []*types.SystemSetting) ([]*types.SystemSetting, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(settings) == 0 {
		return []*types.SystemSetting{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return settings, nil
}

func (sr *settingRepo) Get(ctx context.Context, tx *gorm.DB, key string) (*types.SystemSetting, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.SystemSetting
	if err := transaction.WithContext(ctx).
		Where("setting_key = ?", key).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (sr *settingRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.SystemSetting, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.SystemSetting
	if err := transaction.WithContext(ctx).
		Order("setting_key").
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (sr *settingRepo) ListPublic(ctx context.Context, tx *gorm.DB) ([]*types.SystemSetting, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.SystemSetting
	if err := transaction.WithContext(ctx).
		Where("is_public").
		Order("setting_key").
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (sr *settingRepo) Set(ctx context.Context, tx *gorm.DB, key, value string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.SystemSetting{}).
		Where("setting_key = ?", key).
		Update("setting_value", value).Error)
}
