package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

// CachedSession is the subset of a session row worth keeping hot: enough to
// authenticate a request without a database round trip.
type CachedSession struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionCache interface {
	Put(ctx context.Context, token string, s CachedSession, ttl time.Duration) error
	Get(ctx context.Context, token string) (*CachedSession, error)
	Drop(ctx context.Context, token string) error
	Close() error
}

type sessionCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

func NewSessionCache(log *logger.Logger) (SessionCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(os.Getenv("REDIS_SESSION_PREFIX"))
	if prefix == "" {
		prefix = "session"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &sessionCache{
		log:    log.With("service", "RedisSessionCache"),
		rdb:    rdb,
		prefix: prefix,
	}, nil
}

func (c *sessionCache) key(token string) string { return c.prefix + ":" + token }

func (c *sessionCache) Put(ctx context.Context, token string, s CachedSession, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("session cache not initialized")
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(token), raw, ttl).Err()
}

// Get returns (nil, nil) on a miss; callers fall back to the database.
func (c *sessionCache) Get(ctx context.Context, token string) (*CachedSession, error) {
	if c == nil || c.rdb == nil {
		return nil, fmt.Errorf("session cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, c.key(token)).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s CachedSession
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		c.log.Warn("bad cached session payload", "error", err)
		return nil, nil
	}
	return &s, nil
}

func (c *sessionCache) Drop(ctx context.Context, token string) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("session cache not initialized")
	}
	return c.rdb.Del(ctx, c.key(token)).Err()
}

func (c *sessionCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
