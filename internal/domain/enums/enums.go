// Package enums defines the closed value sets used by status and category
// columns. Each set is mirrored as a native Postgres enum type during
// migration; adding a label is a migration, never a data operation.
package enums

type UserType string

const (
	UserTypePatient       UserType = "patient"
	UserTypeDoctor        UserType = "doctor"
	UserTypeAdmin         UserType = "admin"
	UserTypeFacilityStaff UserType = "facility_staff"
)

func UserTypeValues() []UserType {
	return []UserType{UserTypePatient, UserTypeDoctor, UserTypeAdmin, UserTypeFacilityStaff}
}

func (v UserType) Valid() bool {
	switch v {
	case UserTypePatient, UserTypeDoctor, UserTypeAdmin, UserTypeFacilityStaff:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusPendingVerification UserStatus = "pending_verification"
	UserStatusActive              UserStatus = "active"
	UserStatusInactive            UserStatus = "inactive"
	UserStatusSuspended           UserStatus = "suspended"
)

func UserStatusValues() []UserStatus {
	return []UserStatus{UserStatusPendingVerification, UserStatusActive, UserStatusInactive, UserStatusSuspended}
}

func (v UserStatus) Valid() bool {
	switch v {
	case UserStatusPendingVerification, UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

func GenderValues() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther, GenderUnknown}
}

func (v Gender) Valid() bool {
	switch v {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	}
	return false
}

type RegistrationStatus string

const (
	RegistrationStatusPending        RegistrationStatus = "pending"
	RegistrationStatusApproved       RegistrationStatus = "approved"
	RegistrationStatusRejected       RegistrationStatus = "rejected"
	RegistrationStatusRequiresReview RegistrationStatus = "requires_review"
)

func RegistrationStatusValues() []RegistrationStatus {
	return []RegistrationStatus{RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected, RegistrationStatusRequiresReview}
}

func (v RegistrationStatus) Valid() bool {
	switch v {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected, RegistrationStatusRequiresReview:
		return true
	}
	return false
}

type RecordType string

const (
	RecordTypeConsultation     RecordType = "consultation"
	RecordTypeLabResult        RecordType = "lab_result"
	RecordTypePrescription     RecordType = "prescription"
	RecordTypeImaging          RecordType = "imaging"
	RecordTypeVaccination      RecordType = "vaccination"
	RecordTypeAllergy          RecordType = "allergy"
	RecordTypeDischargeSummary RecordType = "discharge_summary"
	RecordTypeBirthRecord      RecordType = "birth_record"
)

func RecordTypeValues() []RecordType {
	return []RecordType{
		RecordTypeConsultation, RecordTypeLabResult, RecordTypePrescription,
		RecordTypeImaging, RecordTypeVaccination, RecordTypeAllergy,
		RecordTypeDischargeSummary, RecordTypeBirthRecord,
	}
}

func (v RecordType) Valid() bool {
	switch v {
	case RecordTypeConsultation, RecordTypeLabResult, RecordTypePrescription,
		RecordTypeImaging, RecordTypeVaccination, RecordTypeAllergy,
		RecordTypeDischargeSummary, RecordTypeBirthRecord:
		return true
	}
	return false
}

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyNormal   UrgencyLevel = "normal"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

func UrgencyLevelValues() []UrgencyLevel {
	return []UrgencyLevel{UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyCritical}
}

func (v UrgencyLevel) Valid() bool {
	switch v {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

func AppointmentStatusValues() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled, AppointmentNoShow,
	}
}

func (v AppointmentStatus) Valid() bool {
	switch v {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeFollowUp     AppointmentType = "follow_up"
	AppointmentTypeCheckup      AppointmentType = "checkup"
	AppointmentTypeVaccination  AppointmentType = "vaccination"
	AppointmentTypeEmergency    AppointmentType = "emergency"
)

func AppointmentTypeValues() []AppointmentType {
	return []AppointmentType{
		AppointmentTypeConsultation, AppointmentTypeFollowUp,
		AppointmentTypeCheckup, AppointmentTypeVaccination, AppointmentTypeEmergency,
	}
}

func (v AppointmentType) Valid() bool {
	switch v {
	case AppointmentTypeConsultation, AppointmentTypeFollowUp,
		AppointmentTypeCheckup, AppointmentTypeVaccination, AppointmentTypeEmergency:
		return true
	}
	return false
}

type DocumentType string

const (
	DocumentTypeBirthCertificate DocumentType = "birth_certificate"
	DocumentTypeMedicalReport    DocumentType = "medical_report"
	DocumentTypeLabReport        DocumentType = "lab_report"
	DocumentTypePrescription     DocumentType = "prescription"
	DocumentTypeImaging          DocumentType = "imaging"
	DocumentTypeInsurance        DocumentType = "insurance"
	DocumentTypeConsentForm      DocumentType = "consent_form"
	DocumentTypeOther            DocumentType = "other"
)

func DocumentTypeValues() []DocumentType {
	return []DocumentType{
		DocumentTypeBirthCertificate, DocumentTypeMedicalReport,
		DocumentTypeLabReport, DocumentTypePrescription, DocumentTypeImaging,
		DocumentTypeInsurance, DocumentTypeConsentForm, DocumentTypeOther,
	}
}

func (v DocumentType) Valid() bool {
	switch v {
	case DocumentTypeBirthCertificate, DocumentTypeMedicalReport,
		DocumentTypeLabReport, DocumentTypePrescription, DocumentTypeImaging,
		DocumentTypeInsurance, DocumentTypeConsentForm, DocumentTypeOther:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationAppointmentReminder NotificationType = "appointment_reminder"
	NotificationAppointmentUpdate   NotificationType = "appointment_update"
	NotificationRecordUpdate        NotificationType = "record_update"
	NotificationRegistrationUpdate  NotificationType = "registration_update"
	NotificationSystem              NotificationType = "system"
)

func NotificationTypeValues() []NotificationType {
	return []NotificationType{
		NotificationAppointmentReminder, NotificationAppointmentUpdate,
		NotificationRecordUpdate, NotificationRegistrationUpdate, NotificationSystem,
	}
}

func (v NotificationType) Valid() bool {
	switch v {
	case NotificationAppointmentReminder, NotificationAppointmentUpdate,
		NotificationRecordUpdate, NotificationRegistrationUpdate, NotificationSystem:
		return true
	}
	return false
}

type SessionStatus string

const (
	SessionActive  SessionStatus = "active"
	SessionExpired SessionStatus = "expired"
	SessionRevoked SessionStatus = "revoked"
)

func SessionStatusValues() []SessionStatus {
	return []SessionStatus{SessionActive, SessionExpired, SessionRevoked}
}

func (v SessionStatus) Valid() bool {
	switch v {
	case SessionActive, SessionExpired, SessionRevoked:
		return true
	}
	return false
}
