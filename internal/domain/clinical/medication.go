package clinical

import (
	"time"

	"github.com/google/uuid"

	"github.com/birthhealthnetwork/bhn-backend/internal/domain/identity"
)

// Medication is an append-mostly prescription row, removed with its patient
// (and with its health record when one is linked).
type Medication struct {
	ID                   uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PatientID            uuid.UUID         `gorm:"type:uuid;not null;index;column:patient_id" json:"patient_id"`
	Patient              *identity.Patient `gorm:"constraint:OnDelete:CASCADE;foreignKey:PatientID;references:ID" json:"patient,omitempty"`
	HealthRecordID       *uuid.UUID        `gorm:"type:uuid;index;column:health_record_id" json:"health_record_id,omitempty"`
	HealthRecord         *HealthRecord     `gorm:"constraint:OnDelete:CASCADE;foreignKey:HealthRecordID;references:ID" json:"health_record,omitempty"`
	PrescribedByDoctorID *uuid.UUID        `gorm:"type:uuid;index;column:prescribed_by_doctor_id" json:"prescribed_by_doctor_id,omitempty"`

	MedicationName string     `gorm:"not null;column:medication_name" json:"medication_name"`
	Dosage         string     `gorm:"column:dosage" json:"dosage,omitempty"`
	Frequency      string     `gorm:"column:frequency" json:"frequency,omitempty"`
	Instructions   string     `gorm:"type:text;column:instructions" json:"instructions,omitempty"`
	StartDate      *time.Time `gorm:"type:date;column:start_date" json:"start_date,omitempty"`
	EndDate        *time.Time `gorm:"type:date;column:end_date" json:"end_date,omitempty"`
	IsActive       bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Medication) TableName() string { return "medications" }
