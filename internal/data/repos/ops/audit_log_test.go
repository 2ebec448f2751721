package ops_test

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	opsrepo "github.com/birthhealthnetwork/bhn-backend/internal/data/repos/ops"
	"github.com/birthhealthnetwork/bhn-backend/internal/data/repos/testutil"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
)

func TestAuditLogAppendAndList(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewAuditLogRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	actor := testutil.SeedUser(t, tx, enums.UserTypeAdmin)
	p := testutil.SeedPatient(t, tx)

	entries, err := repo.Append(ctx, tx, []*types.AuditLog{
		{
			UserID:       &actor.ID,
			Action:       "patient.update",
			ResourceType: "patient",
			ResourceID:   &p.ID,
			OldValues:    datatypes.JSON(`{"blood_type":""}`),
			NewValues:    datatypes.JSON(`{"blood_type":"O+"}`),
		},
		{
			UserID:       &actor.ID,
			Action:       "patient.view",
			ResourceType: "patient",
			ResourceID:   &p.ID,
		},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if entries[0].Outcome != "success" {
		t.Fatalf("outcome = %q, want success default", entries[0].Outcome)
	}

	byResource, err := repo.ListByResource(ctx, tx, "patient", p.ID, 0)
	if err != nil {
		t.Fatalf("list by resource: %v", err)
	}
	if len(byResource) != 2 {
		t.Fatalf("got %d entries for resource, want 2", len(byResource))
	}

	byUser, err := repo.ListByUser(ctx, tx, actor.ID, 0)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("got %d entries for user, want 2", len(byUser))
	}
}

// Audit rows keep their actor via SET NULL, so history outlives the
// account with the attribution dropped.
func TestAuditLogSurvivesUserDelete(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := opsrepo.NewAuditLogRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	actor := testutil.SeedUser(t, tx, enums.UserTypeAdmin)
	entries, err := repo.Append(ctx, tx, []*types.AuditLog{{
		UserID:       &actor.ID,
		Action:       "login",
		ResourceType: "user",
		ResourceID:   &actor.ID,
	}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := tx.Delete(&types.User{}, "id = ?", actor.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var survivor types.AuditLog
	if err := tx.First(&survivor, "id = ?", entries[0].ID).Error; err != nil {
		t.Fatalf("audit row gone after user delete: %v", err)
	}
	if survivor.UserID != nil {
		t.Fatalf("user_id = %v, want NULL after actor delete", survivor.UserID)
	}
}
