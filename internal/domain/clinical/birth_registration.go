package clinical

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/identity"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

// BirthRegistration captures child and parental demographics at time of
// birth and runs the two-actor review workflow: one user registers, another
// reviews. Apgar scores are engine-checked to [0,10].
type BirthRegistration struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RegistrationNumber string    `gorm:"uniqueIndex;not null;column:registration_number" json:"registration_number"`

	ChildFirstName string       `gorm:"not null;column:child_first_name" json:"child_first_name"`
	ChildLastName  string       `gorm:"not null;column:child_last_name" json:"child_last_name"`
	ChildGender    enums.Gender `gorm:"type:gender_type;not null;column:child_gender" json:"child_gender"`
	DateOfBirth    time.Time    `gorm:"type:date;not null;column:date_of_birth" json:"date_of_birth"`
	TimeOfBirth    string       `gorm:"column:time_of_birth" json:"time_of_birth,omitempty"`
	PlaceOfBirth   string       `gorm:"column:place_of_birth" json:"place_of_birth,omitempty"`

	FacilityID *uuid.UUID                   `gorm:"type:uuid;index;column:facility_id" json:"facility_id,omitempty"`
	Facility   *identity.HealthcareFacility `gorm:"foreignKey:FacilityID;references:ID" json:"facility,omitempty"`

	BirthWeightGrams    *int   `gorm:"column:birth_weight_grams" json:"birth_weight_grams,omitempty"`
	GestationalAgeWeeks *int   `gorm:"column:gestational_age_weeks" json:"gestational_age_weeks,omitempty"`
	ApgarScore1Min      *int   `gorm:"column:apgar_score_1min" json:"apgar_score_1min,omitempty"`
	ApgarScore5Min      *int   `gorm:"column:apgar_score_5min" json:"apgar_score_5min,omitempty"`
	DeliveryType        string `gorm:"column:delivery_type" json:"delivery_type,omitempty"`
	Complications       string `gorm:"type:text;column:complications" json:"complications,omitempty"`

	MotherFirstName   string     `gorm:"not null;column:mother_first_name" json:"mother_first_name"`
	MotherLastName    string     `gorm:"not null;column:mother_last_name" json:"mother_last_name"`
	MotherNationalID  string     `gorm:"column:mother_national_id" json:"mother_national_id,omitempty"`
	MotherDateOfBirth *time.Time `gorm:"type:date;column:mother_date_of_birth" json:"mother_date_of_birth,omitempty"`
	FatherFirstName   string     `gorm:"column:father_first_name" json:"father_first_name,omitempty"`
	FatherLastName    string     `gorm:"column:father_last_name" json:"father_last_name,omitempty"`
	FatherNationalID  string     `gorm:"column:father_national_id" json:"father_national_id,omitempty"`
	FatherDateOfBirth *time.Time `gorm:"type:date;column:father_date_of_birth" json:"father_date_of_birth,omitempty"`

	RegistrationStatus enums.RegistrationStatus `gorm:"type:registration_status;not null;default:'pending';column:registration_status" json:"registration_status"`
	RegisteredByUserID uuid.UUID                `gorm:"type:uuid;not null;index;column:registered_by_user_id" json:"registered_by_user_id"`
	ReviewedByUserID   *uuid.UUID               `gorm:"type:uuid;column:reviewed_by_user_id" json:"reviewed_by_user_id,omitempty"`
	ReviewedAt         *time.Time               `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	RejectionReason    string                   `gorm:"type:text;column:rejection_reason" json:"rejection_reason,omitempty"`

	// Set once the child gets a patient record of their own.
	PatientID *uuid.UUID        `gorm:"type:uuid;index;column:patient_id" json:"patient_id,omitempty"`
	Patient   *identity.Patient `gorm:"foreignKey:PatientID;references:ID" json:"patient,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (BirthRegistration) TableName() string { return "birth_registrations" }

func (r *BirthRegistration) BeforeSave(*gorm.DB) error {
	if !r.ChildGender.Valid() {
		return fmt.Errorf("%w: child_gender %q", bhnerr.ErrEnumViolation, r.ChildGender)
	}
	if r.RegistrationStatus != "" && !r.RegistrationStatus.Valid() {
		return fmt.Errorf("%w: registration_status %q", bhnerr.ErrEnumViolation, r.RegistrationStatus)
	}
	return nil
}
