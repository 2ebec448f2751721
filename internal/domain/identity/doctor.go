package identity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the clinician role extension of User. The facility reference is
// optional and does not cascade; a facility can be deleted only once no
// doctor points at it.
type Doctor struct {
	ID                uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID           `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	User              *User               `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	LicenseNumber     string              `gorm:"uniqueIndex;not null;column:license_number" json:"license_number"`
	Specialty         string              `gorm:"column:specialty" json:"specialty,omitempty"`
	Qualification     string              `gorm:"column:qualification" json:"qualification,omitempty"`
	YearsOfExperience int                 `gorm:"not null;default:0;column:years_of_experience" json:"years_of_experience"`
	FacilityID        *uuid.UUID          `gorm:"type:uuid;index;column:facility_id" json:"facility_id,omitempty"`
	Facility          *HealthcareFacility `gorm:"foreignKey:FacilityID;references:ID" json:"facility,omitempty"`
	Bio               string              `gorm:"type:text;column:bio" json:"bio,omitempty"`
	IsVerified        bool                `gorm:"not null;default:false;column:is_verified" json:"is_verified"`
	CreatedAt         time.Time           `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time           `gorm:"not null;default:now()" json:"updated_at"`
}

func (Doctor) TableName() string { return "doctors" }
