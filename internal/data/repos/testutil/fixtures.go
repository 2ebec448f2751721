package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
)

var seq atomic.Int64

// NextSeq returns a process-unique counter for building distinct values
// for unique columns (emails, license numbers, BHN IDs).
func NextSeq() int64 { return seq.Add(1) }

func PtrUUID(id uuid.UUID) *uuid.UUID { return &id }

func PtrTime(t time.Time) *time.Time { return &t }

func PtrInt(v int) *int { return &v }

func SeedUser(tb testing.TB, tx *gorm.DB, userType enums.UserType) *types.User {
	tb.Helper()
	u := &types.User{
		Email:        fmt.Sprintf("user%d@example.test", NextSeq()),
		PasswordHash: "not-a-real-hash",
		UserType:     userType,
		Status:       enums.UserStatusActive,
	}
	if err := tx.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProfile(tb testing.TB, tx *gorm.DB, userID uuid.UUID) *types.UserProfile {
	tb.Helper()
	p := &types.UserProfile{
		UserID:    userID,
		FirstName: "Test",
		LastName:  fmt.Sprintf("Person%d", NextSeq()),
		Gender:    enums.GenderUnknown,
	}
	if err := tx.Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedFacility(tb testing.TB, tx *gorm.DB) *types.HealthcareFacility {
	tb.Helper()
	f := &types.HealthcareFacility{
		Name:         fmt.Sprintf("Facility %d", NextSeq()),
		FacilityType: "hospital",
		IsActive:     true,
	}
	if err := tx.Create(f).Error; err != nil {
		tb.Fatalf("seed facility: %v", err)
	}
	return f
}

// SeedDoctor creates the backing user row as well.
func SeedDoctor(tb testing.TB, tx *gorm.DB) *types.Doctor {
	tb.Helper()
	u := SeedUser(tb, tx, enums.UserTypeDoctor)
	d := &types.Doctor{
		UserID:        u.ID,
		LicenseNumber: fmt.Sprintf("LIC-%06d", NextSeq()),
		Specialty:     "obstetrics",
	}
	if err := tx.Create(d).Error; err != nil {
		tb.Fatalf("seed doctor: %v", err)
	}
	return d
}

// SeedPatient creates the backing user row as well.
func SeedPatient(tb testing.TB, tx *gorm.DB) *types.Patient {
	tb.Helper()
	u := SeedUser(tb, tx, enums.UserTypePatient)
	p := &types.Patient{
		UserID: u.ID,
		BHNID:  fmt.Sprintf("BHN%07d", NextSeq()),
	}
	if err := tx.Create(p).Error; err != nil {
		tb.Fatalf("seed patient: %v", err)
	}
	return p
}

func SeedHealthRecord(tb testing.TB, tx *gorm.DB, patientID uuid.UUID) *types.HealthRecord {
	tb.Helper()
	r := &types.HealthRecord{
		PatientID:  patientID,
		RecordType: enums.RecordTypeConsultation,
		Title:      fmt.Sprintf("Record %d", NextSeq()),
		RecordDate: time.Now().UTC(),
	}
	if err := tx.Create(r).Error; err != nil {
		tb.Fatalf("seed health record: %v", err)
	}
	return r
}

func SeedAppointment(tb testing.TB, tx *gorm.DB, patientID, doctorID uuid.UUID) *types.Appointment {
	tb.Helper()
	a := &types.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentType: enums.AppointmentTypeCheckup,
		ScheduledAt:     time.Now().UTC().Add(24 * time.Hour),
	}
	if err := tx.Create(a).Error; err != nil {
		tb.Fatalf("seed appointment: %v", err)
	}
	return a
}

func SeedBirthRegistration(tb testing.TB, tx *gorm.DB, registeredBy uuid.UUID) *types.BirthRegistration {
	tb.Helper()
	r := &types.BirthRegistration{
		RegistrationNumber: fmt.Sprintf("BR-%07d", NextSeq()),
		ChildFirstName:     "Baby",
		ChildLastName:      "Example",
		ChildGender:        enums.GenderFemale,
		DateOfBirth:        time.Now().UTC().AddDate(0, 0, -1),
		MotherFirstName:    "Mother",
		MotherLastName:     "Example",
		RegisteredByUserID: registeredBy,
	}
	if err := tx.Create(r).Error; err != nil {
		tb.Fatalf("seed birth registration: %v", err)
	}
	return r
}
