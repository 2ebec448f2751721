// Package sessions issues and verifies the opaque tokens stored in
// user_sessions. Tokens are random, never derived from user data, and the
// cache is an optimization only: the session row stays authoritative.
package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/birthhealthnetwork/bhn-backend/internal/clients/redis"
	opsrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/ops"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
	"github.com/birthhealthnetwork/bhn-backend/internal/platform/envutil"
)

type Service interface {
	Issue(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) (*types.UserSession, error)
	Validate(ctx context.Context, token string) (*types.UserSession, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	Sweep(ctx context.Context) (int64, error)
}

type service struct {
	repo  opsrepo.SessionRepo
	cache redis.SessionCache
	log   *logger.Logger
	ttl   time.Duration
}

// New wires the service. The cache may be nil; every path degrades to the
// database alone.
func New(repo opsrepo.SessionRepo, cache redis.SessionCache, baseLog *logger.Logger) Service {
	ttlMinutes := envutil.Int("SESSION_TTL_MINUTES", 24*60)
	return &service{
		repo:  repo,
		cache: cache,
		log:   baseLog.With("service", "Sessions"),
		ttl:   time.Duration(ttlMinutes) * time.Minute,
	}
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token entropy: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *service) Issue(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) (*types.UserSession, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", bhnerr.ErrInvalidArgument)
	}
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	refresh, err := newToken()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, nil, []*types.UserSession{{
		UserID:       userID,
		SessionToken: token,
		RefreshToken: refresh,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		ExpiresAt:    time.Now().UTC().Add(s.ttl),
	}})
	if err != nil {
		return nil, err
	}
	session := created[0]

	if s.cache != nil {
		err := s.cache.Put(ctx, token, redis.CachedSession{
			SessionID: session.ID,
			UserID:    session.UserID,
			ExpiresAt: session.ExpiresAt,
		}, s.ttl)
		if err != nil {
			s.log.Warn("session cache put failed", "error", err)
		}
	}
	return session, nil
}

// Validate resolves a token to its live session. Unknown, expired and
// revoked tokens all come back as ErrNotFound so callers cannot probe which
// case they hit.
func (s *service) Validate(ctx context.Context, token string) (*types.UserSession, error) {
	if token == "" {
		return nil, bhnerr.ErrNotFound
	}
	now := time.Now().UTC()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, token)
		if err != nil {
			s.log.Warn("session cache get failed", "error", err)
		} else if cached != nil && cached.ExpiresAt.Before(now) {
			_ = s.cache.Drop(ctx, token)
			return nil, bhnerr.ErrNotFound
		}
		// A cache hit still falls through: revocation only lands in the
		// database, and the row is what callers get back.
	}

	session, err := s.repo.GetByToken(ctx, nil, token)
	if err != nil {
		return nil, err
	}
	if session.Status != enums.SessionActive || !session.ExpiresAt.After(now) {
		if s.cache != nil {
			_ = s.cache.Drop(ctx, token)
		}
		return nil, bhnerr.ErrNotFound
	}

	if err := s.repo.TouchLastSeen(ctx, nil, session.ID, now); err != nil {
		s.log.Warn("touch last seen failed", "error", err)
	}
	return session, nil
}

func (s *service) Revoke(ctx context.Context, token string) error {
	session, err := s.repo.GetByToken(ctx, nil, token)
	if err != nil {
		return err
	}
	if err := s.repo.Revoke(ctx, nil, session.ID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Drop(ctx, token)
	}
	return nil
}

// RevokeAllForUser cannot enumerate cached tokens, so stale cache entries
// are left to lapse; Validate rechecks the database either way.
func (s *service) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.repo.RevokeAllForUser(ctx, nil, userID)
}

func (s *service) Sweep(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpireStale(ctx, nil, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("expired stale sessions", "count", n)
	}
	return n, nil
}
