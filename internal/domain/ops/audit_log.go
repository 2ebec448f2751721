package ops

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is append-only: no updated_at column, no update trigger, and the
// repo exposes no update or delete path. The user edge is SET NULL so audit
// history survives account removal without its attribution.
type AuditLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       *uuid.UUID     `gorm:"type:uuid;index;column:user_id" json:"user_id,omitempty"`
	Action       string         `gorm:"not null;index;column:action" json:"action"`
	ResourceType string         `gorm:"not null;index;column:resource_type" json:"resource_type"`
	ResourceID   *uuid.UUID     `gorm:"type:uuid;index;column:resource_id" json:"resource_id,omitempty"`
	OldValues    datatypes.JSON `gorm:"type:jsonb;column:old_values" json:"old_values,omitempty"`
	NewValues    datatypes.JSON `gorm:"type:jsonb;column:new_values" json:"new_values,omitempty"`
	IPAddress    string         `gorm:"column:ip_address" json:"ip_address,omitempty"`
	UserAgent    string         `gorm:"column:user_agent" json:"user_agent,omitempty"`
	Outcome      string         `gorm:"not null;default:'success';column:outcome" json:"outcome"`
	CreatedAt    time.Time      `gorm:"not null;default:now();index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
