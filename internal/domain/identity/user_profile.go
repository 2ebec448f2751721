package identity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

// UserProfile extends User with demographic and contact fields. One row per
// user by convention; the schema does not enforce the 1:1.
type UserProfile struct {
	ID                    uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                uuid.UUID    `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	User                  *User        `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	FirstName             string       `gorm:"not null;column:first_name" json:"first_name"`
	LastName              string       `gorm:"not null;column:last_name" json:"last_name"`
	MiddleName            string       `gorm:"column:middle_name" json:"middle_name,omitempty"`
	DateOfBirth           *time.Time   `gorm:"type:date;column:date_of_birth" json:"date_of_birth,omitempty"`
	Gender                enums.Gender `gorm:"type:gender_type;column:gender" json:"gender,omitempty"`
	AddressLine1          string       `gorm:"column:address_line1" json:"address_line1,omitempty"`
	AddressLine2          string       `gorm:"column:address_line2" json:"address_line2,omitempty"`
	City                  string       `gorm:"column:city" json:"city,omitempty"`
	State                 string       `gorm:"column:state" json:"state,omitempty"`
	PostalCode            string       `gorm:"column:postal_code" json:"postal_code,omitempty"`
	Country               string       `gorm:"column:country" json:"country,omitempty"`
	EmergencyContactName  string       `gorm:"column:emergency_contact_name" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string       `gorm:"column:emergency_contact_phone" json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

func (p *UserProfile) BeforeSave(*gorm.DB) error {
	if p.Gender != "" && !p.Gender.Valid() {
		return fmt.Errorf("%w: gender %q", bhnerr.ErrEnumViolation, p.Gender)
	}
	return nil
}
