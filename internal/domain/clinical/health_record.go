package clinical

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

// HealthRecord belongs to exactly one patient and is removed with them.
// IsConfidential is advisory at this layer: downstream access control must
// honor it, the schema only stores it.
type HealthRecord struct {
	ID         uuid.UUID                    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PatientID  uuid.UUID                    `gorm:"type:uuid;not null;index;column:patient_id" json:"patient_id"`
	Patient    *identity.Patient            `gorm:"constraint:OnDelete:CASCADE;foreignKey:PatientID;references:ID" json:"patient,omitempty"`
	DoctorID   *uuid.UUID                   `gorm:"type:uuid;index;column:doctor_id" json:"doctor_id,omitempty"`
	Doctor     *identity.Doctor             `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	FacilityID *uuid.UUID                   `gorm:"type:uuid;index;column:facility_id" json:"facility_id,omitempty"`
	Facility   *identity.HealthcareFacility `gorm:"foreignKey:FacilityID;references:ID" json:"facility,omitempty"`

	RecordType     enums.RecordType   `gorm:"type:record_type;not null;column:record_type" json:"record_type"`
	Title          string             `gorm:"not null;column:title" json:"title"`
	Description    string             `gorm:"type:text;column:description" json:"description,omitempty"`
	Diagnosis      string             `gorm:"type:text;column:diagnosis" json:"diagnosis,omitempty"`
	Treatment      string             `gorm:"type:text;column:treatment" json:"treatment,omitempty"`
	RecordDate     time.Time          `gorm:"not null;column:record_date" json:"record_date"`
	Urgency        enums.UrgencyLevel `gorm:"type:urgency_level;not null;default:'normal';column:urgency" json:"urgency"`
	IsConfidential bool               `gorm:"not null;default:false;column:is_confidential" json:"is_confidential"`
	Attachments    datatypes.JSON     `gorm:"type:jsonb;column:attachments" json:"attachments,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (HealthRecord) TableName() string { return "health_records" }

func (h *HealthRecord) BeforeSave(*gorm.DB) error {
	if !h.RecordType.Valid() {
		return fmt.Errorf("%w: record_type %q", bhnerr.ErrEnumViolation, h.RecordType)
	}
	if h.Urgency != "" && !h.Urgency.Valid() {
		return fmt.Errorf("%w: urgency %q", bhnerr.ErrEnumViolation, h.Urgency)
	}
	return nil
}
