package ops

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

// AuditLogRepo deliberately exposes no update or delete path: rows are
// written once and only ever read back.
type AuditLogRepo interface {
	Append(ctx context.Context, tx *gorm.DB, entries []*types.AuditLog) ([]*types.AuditLog, error)
	ListByResource(ctx context.Context, tx *gorm.DB, resourceType string, resourceID uuid.UUID, limit int) ([]*types.AuditLog, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AuditLog, error)
}

type auditLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAuditLogRepo(gdb *gorm.DB, baseLog *logger.Logger) AuditLogRepo {
	return &auditLogRepo{db: gdb, log: baseLog.With("repo", "AuditLogRepo")}
}

func (ar *auditLogRepo) Append(ctx context.Context, tx *gorm.DB, entries []*types.AuditLog) ([]*types.AuditLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(entries) == 0 {
		return []*types.AuditLog{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return entries, nil
}

func (ar *auditLogRepo) ListByResource(ctx context.Context, tx *gorm.DB, resourceType string, resourceID uuid.UUID, limit int) ([]*types.AuditLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if limit <= 0 {
		limit = 100
	}

	var results []*types.AuditLog
	if err := transaction.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (ar *auditLogRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AuditLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if limit <= 0 {
		limit = 100
	}

	var results []*types.AuditLog
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}
