package identity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Patient is the care-recipient role extension of User. BHNID is the
// human-facing identifier, distinct from the primary key and opaque to this
// layer. PrimaryDoctorID does not cascade: deleting the referenced doctor
// is rejected by the engine until the pointer is cleared.
type Patient struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	User                  *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	BHNID                 string         `gorm:"uniqueIndex;not null;column:bhn_id" json:"bhn_id"`
	BloodType             string         `gorm:"column:blood_type" json:"blood_type,omitempty"`
	Allergies             datatypes.JSON `gorm:"type:jsonb;column:allergies" json:"allergies,omitempty"`
	ChronicConditions     datatypes.JSON `gorm:"type:jsonb;column:chronic_conditions" json:"chronic_conditions,omitempty"`
	InsuranceProvider     string         `gorm:"column:insurance_provider" json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string         `gorm:"column:insurance_policy_number" json:"insurance_policy_number,omitempty"`
	PrimaryDoctorID       *uuid.UUID     `gorm:"type:uuid;index;column:primary_doctor_id" json:"primary_doctor_id,omitempty"`
	PrimaryDoctor         *Doctor        `gorm:"foreignKey:PrimaryDoctorID;references:ID" json:"primary_doctor,omitempty"`
	CreatedAt             time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Patient) TableName() string { return "patients" }
