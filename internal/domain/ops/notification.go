package ops

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/identity"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

// Notification is a per-user delivery record. At most one subject column is
// set; delivery over each channel is tracked by its own flag so the sender
// can retry channels independently.
type Notification struct {
	ID     uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	User   *identity.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	NotificationType enums.NotificationType `gorm:"type:notification_type;not null;column:notification_type" json:"notification_type"`
	Title            string                 `gorm:"not null;column:title" json:"title"`
	Message          string                 `gorm:"type:text;column:message" json:"message,omitempty"`

	AppointmentID       *uuid.UUID `gorm:"type:uuid;index;column:appointment_id" json:"appointment_id,omitempty"`
	HealthRecordID      *uuid.UUID `gorm:"type:uuid;index;column:health_record_id" json:"health_record_id,omitempty"`
	BirthRegistrationID *uuid.UUID `gorm:"type:uuid;index;column:birth_registration_id" json:"birth_registration_id,omitempty"`

	IsRead    bool       `gorm:"not null;default:false;column:is_read" json:"is_read"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	EmailSent bool       `gorm:"not null;default:false;column:email_sent" json:"email_sent"`
	SMSSent   bool       `gorm:"not null;default:false;column:sms_sent" json:"sms_sent"`
	PushSent  bool       `gorm:"not null;default:false;column:push_sent" json:"push_sent"`

	Metadata datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeSave(*gorm.DB) error {
	if !n.NotificationType.Valid() {
		return fmt.Errorf("%w: notification_type %q", bhnerr.ErrEnumViolation, n.NotificationType)
	}
	return nil
}
