package ops

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

type SessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessions []*types.UserSession) ([]*types.UserSession, error)
	GetByToken(ctx context.Context, tx *gorm.DB, sessionToken string) (*types.UserSession, error)
	TouchLastSeen(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, at time.Time) error
	Revoke(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	ExpireStale(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error)
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(gdb *gorm.DB, baseLog *logger.Logger) SessionRepo {
	return &sessionRepo{db: gdb, log: baseLog.With("repo", "SessionRepo")}
}

func (sr *sessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.UserSession) ([]*types.UserSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(sessions) == 0 {
		return []*types.UserSession{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return sessions, nil
}

func (sr *sessionRepo) GetByToken(ctx context.Context, tx *gorm.DB, sessionToken string) (*types.UserSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.UserSession
	if err := transaction.WithContext(ctx).
		Where("session_token = ?", sessionToken).
		First(&result).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return &result, nil
}

func (sr *sessionRepo) TouchLastSeen(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.UserSession{}).
		Where("id = ?", sessionID).
		Update("last_seen_at", at).Error)
}

func (sr *sessionRepo) Revoke(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.UserSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]any{
			"status":     enums.SessionRevoked,
			"revoked_at": time.Now().UTC(),
		}).Error)
}

func (sr *sessionRepo) RevokeAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.UserSession{}).
		Where("user_id = ? AND status = ?", userID, enums.SessionActive).
		Updates(map[string]any{
			"status":     enums.SessionRevoked,
			"revoked_at": time.Now().UTC(),
		}).Error)
}

// ExpireStale flips active sessions whose expiry has passed; run
// periodically by the application.
func (sr *sessionRepo) ExpireStale(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.UserSession{}).
		Where("status = ? AND expires_at <= ?", enums.SessionActive, now).
		Update("status", enums.SessionExpired)
	if res.Error != nil {
		return 0, db.ClassifyError(res.Error)
	}
	return res.RowsAffected, nil
}
