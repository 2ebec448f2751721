package domain

import (
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/clinical"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/identity"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/ops"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/subject"
)

type User = identity.User
type UserProfile = identity.UserProfile
type Doctor = identity.Doctor
type Patient = identity.Patient
type HealthcareFacility = identity.HealthcareFacility

type BirthRegistration = clinical.BirthRegistration
type HealthRecord = clinical.HealthRecord
type Medication = clinical.Medication
type LabResult = clinical.LabResult
type Appointment = clinical.Appointment
type Document = clinical.Document

type Notification = ops.Notification
type AuditLog = ops.AuditLog
type UserSession = ops.UserSession
type SystemSetting = ops.SystemSetting

type SubjectRef = subject.Ref
type SubjectKind = subject.Kind
