package identity

import (
	"time"

	"github.com/google/uuid"
)

// HealthcareFacility is an independent entity referenced as optional
// location context by registrations, records and appointments.
type HealthcareFacility struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string    `gorm:"not null;column:name" json:"name"`
	FacilityType  string    `gorm:"column:facility_type" json:"facility_type,omitempty"`
	LicenseNumber string    `gorm:"column:license_number" json:"license_number,omitempty"`
	AddressLine1  string    `gorm:"column:address_line1" json:"address_line1,omitempty"`
	AddressLine2  string    `gorm:"column:address_line2" json:"address_line2,omitempty"`
	City          string    `gorm:"column:city" json:"city,omitempty"`
	State         string    `gorm:"column:state" json:"state,omitempty"`
	PostalCode    string    `gorm:"column:postal_code" json:"postal_code,omitempty"`
	Country       string    `gorm:"column:country" json:"country,omitempty"`
	Phone         string    `gorm:"column:phone" json:"phone,omitempty"`
	Email         string    `gorm:"column:email" json:"email,omitempty"`
	IsActive      bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (HealthcareFacility) TableName() string { return "healthcare_facilities" }
