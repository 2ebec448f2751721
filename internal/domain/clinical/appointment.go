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

// Appointment links a patient and a doctor; both edges cascade, so an
// appointment never outlives either party.
type Appointment struct {
	ID         uuid.UUID                    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PatientID  uuid.UUID                    `gorm:"type:uuid;not null;index;column:patient_id" json:"patient_id"`
	Patient    *identity.Patient            `gorm:"constraint:OnDelete:CASCADE;foreignKey:PatientID;references:ID" json:"patient,omitempty"`
	DoctorID   uuid.UUID                    `gorm:"type:uuid;not null;index;column:doctor_id" json:"doctor_id"`
	Doctor     *identity.Doctor             `gorm:"constraint:OnDelete:CASCADE;foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	FacilityID *uuid.UUID                   `gorm:"type:uuid;index;column:facility_id" json:"facility_id,omitempty"`
	Facility   *identity.HealthcareFacility `gorm:"foreignKey:FacilityID;references:ID" json:"facility,omitempty"`

	AppointmentType    enums.AppointmentType   `gorm:"type:appointment_type;not null;column:appointment_type" json:"appointment_type"`
	Status             enums.AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';column:status" json:"status"`
	ScheduledAt        time.Time               `gorm:"not null;index;column:scheduled_at" json:"scheduled_at"`
	DurationMinutes    int                     `gorm:"not null;default:30;column:duration_minutes" json:"duration_minutes"`
	Reason             string                  `gorm:"type:text;column:reason" json:"reason,omitempty"`
	Notes              string                  `gorm:"type:text;column:notes" json:"notes,omitempty"`
	CancellationReason string                  `gorm:"type:text;column:cancellation_reason" json:"cancellation_reason,omitempty"`
	ReminderSent       bool                    `gorm:"not null;default:false;column:reminder_sent" json:"reminder_sent"`

	InsuranceClaimNumber string `gorm:"column:insurance_claim_number" json:"insurance_claim_number,omitempty"`
	PaymentAmountCents   *int64 `gorm:"column:payment_amount_cents" json:"payment_amount_cents,omitempty"`
	PaymentStatus        string `gorm:"column:payment_status" json:"payment_status,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Appointment) TableName() string { return "appointments" }

func (a *Appointment) BeforeSave(*gorm.DB) error {
	if !a.AppointmentType.Valid() {
		return fmt.Errorf("%w: appointment_type %q", bhnerr.ErrEnumViolation, a.AppointmentType)
	}
	if a.Status != "" && !a.Status.Valid() {
		return fmt.Errorf("%w: appointment status %q", bhnerr.ErrEnumViolation, a.Status)
	}
	return nil
}
