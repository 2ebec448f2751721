package identity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

// User is the authentication root. Profile and role rows reference it and
// are removed with it.
type User struct {
	ID                  uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email               string           `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash        string           `gorm:"not null;column:password_hash" json:"-"`
	UserType            enums.UserType   `gorm:"type:user_type;not null;column:user_type" json:"user_type"`
	Status              enums.UserStatus `gorm:"type:user_status;not null;default:'pending_verification';column:status" json:"status"`
	EmailVerified       bool             `gorm:"not null;default:false;column:email_verified" json:"email_verified"`
	Phone               string           `gorm:"column:phone" json:"phone,omitempty"`
	FailedLoginAttempts int              `gorm:"not null;default:0;column:failed_login_attempts" json:"failed_login_attempts"`
	LockedUntil         *time.Time       `gorm:"column:locked_until" json:"locked_until,omitempty"`
	TwoFactorEnabled    bool             `gorm:"not null;default:false;column:two_factor_enabled" json:"two_factor_enabled"`
	TwoFactorSecret     string           `gorm:"column:two_factor_secret" json:"-"`
	LastLoginAt         *time.Time       `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt           time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeSave(*gorm.DB) error {
	if !u.UserType.Valid() {
		return fmt.Errorf("%w: user_type %q", bhnerr.ErrEnumViolation, u.UserType)
	}
	if u.Status != "" && !u.Status.Valid() {
		return fmt.Errorf("%w: user status %q", bhnerr.ErrEnumViolation, u.Status)
	}
	return nil
}
