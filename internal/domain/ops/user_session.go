package ops

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/identity"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

// UserSession stores opaque tokens; issuing and verifying credentials is
// the application's job, this layer only persists them.
type UserSession struct {
	ID     uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	User   *identity.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	SessionToken string              `gorm:"uniqueIndex;not null;column:session_token" json:"-"`
	RefreshToken string              `gorm:"uniqueIndex;not null;column:refresh_token" json:"-"`
	Status       enums.SessionStatus `gorm:"type:session_status;not null;default:'active';column:status" json:"status"`
	IPAddress    string              `gorm:"column:ip_address" json:"ip_address,omitempty"`
	UserAgent    string              `gorm:"column:user_agent" json:"user_agent,omitempty"`
	ExpiresAt    time.Time           `gorm:"not null;index;column:expires_at" json:"expires_at"`
	RevokedAt    *time.Time          `gorm:"column:revoked_at" json:"revoked_at,omitempty"`
	LastSeenAt   *time.Time          `gorm:"column:last_seen_at" json:"last_seen_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserSession) TableName() string { return "user_sessions" }

func (s *UserSession) BeforeSave(*gorm.DB) error {
	if s.Status != "" && !s.Status.Valid() {
		return fmt.Errorf("%w: session status %q", bhnerr.ErrEnumViolation, s.Status)
	}
	return nil
}
