package ops_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	opsrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/ops"
	"github.com/birthhealthnetwork/bhn-backend/internal/data/repos/testutil"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

func TestSessionTokenUnique(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewSessionRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, tx, enums.UserTypePatient)
	token := fmt.Sprintf("tok-%d", testutil.NextSeq())

	_, err := repo.Create(ctx, tx, []*types.UserSession{{
		UserID:       u.ID,
		SessionToken: token,
		RefreshToken: token + "-refresh",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = tx.Transaction(func(inner *gorm.DB) error {
		_, err := repo.Create(ctx, inner, []*types.UserSession{{
			UserID:       u.ID,
			SessionToken: token,
			RefreshToken: token + "-refresh2",
			ExpiresAt:    time.Now().UTC().Add(time.Hour),
		}})
		return err
	})
	if !errors.Is(err, bhnerr.ErrUniqueViolation) {
		t.Fatalf("duplicate token: got %v, want ErrUniqueViolation", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewSessionRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, tx, enums.UserTypeDoctor)
	token := fmt.Sprintf("tok-%d", testutil.NextSeq())

	created, err := repo.Create(ctx, tx, []*types.UserSession{{
		UserID:       u.ID,
		SessionToken: token,
		RefreshToken: token + "-refresh",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s := created[0]

	got, err := repo.GetByToken(ctx, tx, token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if got.Status != enums.SessionActive {
		t.Fatalf("status = %q, want active default", got.Status)
	}

	if err := repo.TouchLastSeen(ctx, tx, s.ID, time.Now().UTC()); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := repo.Revoke(ctx, tx, s.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	got, err = repo.GetByToken(ctx, tx, token)
	if err != nil {
		t.Fatalf("get after revoke: %v", err)
	}
	if got.Status != enums.SessionRevoked || got.RevokedAt == nil || got.LastSeenAt == nil {
		t.Fatalf("revocation not recorded: %+v", got)
	}

	if _, err := repo.GetByToken(ctx, tx, "no-such-token"); !errors.Is(err, bhnerr.ErrNotFound) {
		t.Fatalf("unknown token: got %v, want ErrNotFound", err)
	}
}

func TestSessionExpireStaleAndRevokeAll(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewSessionRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, tx, enums.UserTypePatient)
	now := time.Now().UTC()

	mk := func(suffix string, expiresAt time.Time) *types.UserSession {
		created, err := repo.Create(ctx, tx, []*types.UserSession{{
			UserID:       u.ID,
			SessionToken: fmt.Sprintf("tok-%d-%s", testutil.NextSeq(), suffix),
			RefreshToken: fmt.Sprintf("ref-%d-%s", testutil.NextSeq(), suffix),
			ExpiresAt:    expiresAt,
		}})
		if err != nil {
			t.Fatalf("create %s: %v", suffix, err)
		}
		return created[0]
	}

	stale := mk("stale", now.Add(-time.Minute))
	fresh := mk("fresh", now.Add(time.Hour))

	expired, err := repo.ExpireStale(ctx, tx, now)
	if err != nil {
		t.Fatalf("expire stale: %v", err)
	}
	if expired != 1 {
		t.Fatalf("expired %d sessions, want 1", expired)
	}

	got, err := repo.GetByToken(ctx, tx, stale.SessionToken)
	if err != nil {
		t.Fatalf("get stale: %v", err)
	}
	if got.Status != enums.SessionExpired {
		t.Fatalf("stale status = %q, want expired", got.Status)
	}

	if err := repo.RevokeAllForUser(ctx, tx, u.ID); err != nil {
		t.Fatalf("revoke all: %v", err)
	}
	got, err = repo.GetByToken(ctx, tx, fresh.SessionToken)
	if err != nil {
		t.Fatalf("get fresh: %v", err)
	}
	if got.Status != enums.SessionRevoked {
		t.Fatalf("fresh status = %q, want revoked", got.Status)
	}

	// RevokeAllForUser only touches active sessions; the expired one keeps
	// its terminal status.
	got, err = repo.GetByToken(ctx, tx, stale.SessionToken)
	if err != nil {
		t.Fatalf("get stale again: %v", err)
	}
	if got.Status != enums.SessionExpired {
		t.Fatalf("stale status after revoke all = %q, want expired", got.Status)
	}
}
