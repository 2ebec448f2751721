package clinical

import (
	"time"

	"github.com/google/uuid"

	"github.com/birthhealthnetwork/bhn-backend/internal/domain/identity"
)

// LabResult is an append-mostly test result row, removed with its patient.
type LabResult struct {
	ID                uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PatientID         uuid.UUID         `gorm:"type:uuid;not null;index;column:patient_id" json:"patient_id"`
	Patient           *identity.Patient `gorm:"constraint:OnDelete:CASCADE;foreignKey:PatientID;references:ID" json:"patient,omitempty"`
	HealthRecordID    *uuid.UUID        `gorm:"type:uuid;index;column:health_record_id" json:"health_record_id,omitempty"`
	HealthRecord      *HealthRecord     `gorm:"constraint:OnDelete:CASCADE;foreignKey:HealthRecordID;references:ID" json:"health_record,omitempty"`
	OrderedByDoctorID *uuid.UUID        `gorm:"type:uuid;index;column:ordered_by_doctor_id" json:"ordered_by_doctor_id,omitempty"`

	TestName       string     `gorm:"not null;column:test_name" json:"test_name"`
	TestCode       string     `gorm:"column:test_code" json:"test_code,omitempty"`
	ResultValue    string     `gorm:"column:result_value" json:"result_value,omitempty"`
	Unit           string     `gorm:"column:unit" json:"unit,omitempty"`
	ReferenceRange string     `gorm:"column:reference_range" json:"reference_range,omitempty"`
	AbnormalFlag   bool       `gorm:"not null;default:false;column:abnormal_flag" json:"abnormal_flag"`
	PerformedAt    *time.Time `gorm:"column:performed_at" json:"performed_at,omitempty"`
	LabName        string     `gorm:"column:lab_name" json:"lab_name,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (LabResult) TableName() string { return "lab_results" }
