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

// Document points at an object in external storage; file bytes never enter
// this schema. At most one of the subject columns is set, enforced on the
// write path rather than by the engine.
type Document struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UploadedByUserID *uuid.UUID     `gorm:"type:uuid;index;column:uploaded_by_user_id" json:"uploaded_by_user_id,omitempty"`
	UploadedBy       *identity.User `gorm:"foreignKey:UploadedByUserID;references:ID" json:"uploaded_by,omitempty"`

	PatientID           *uuid.UUID         `gorm:"type:uuid;index;column:patient_id" json:"patient_id,omitempty"`
	HealthRecordID      *uuid.UUID         `gorm:"type:uuid;index;column:health_record_id" json:"health_record_id,omitempty"`
	BirthRegistrationID *uuid.UUID         `gorm:"type:uuid;index;column:birth_registration_id" json:"birth_registration_id,omitempty"`
	Patient             *identity.Patient  `gorm:"foreignKey:PatientID;references:ID" json:"patient,omitempty"`
	HealthRecord        *HealthRecord      `gorm:"foreignKey:HealthRecordID;references:ID" json:"health_record,omitempty"`
	BirthRegistration   *BirthRegistration `gorm:"foreignKey:BirthRegistrationID;references:ID" json:"birth_registration,omitempty"`

	DocumentType  enums.DocumentType `gorm:"type:document_type;not null;column:document_type" json:"document_type"`
	Title         string             `gorm:"not null;column:title" json:"title"`
	FileName      string             `gorm:"column:file_name" json:"file_name,omitempty"`
	MimeType      string             `gorm:"column:mime_type" json:"mime_type,omitempty"`
	FileSizeBytes int64              `gorm:"not null;default:0;column:file_size_bytes" json:"file_size_bytes"`

	StorageBucket  string `gorm:"not null;column:storage_bucket" json:"storage_bucket"`
	StorageKey     string `gorm:"not null;column:storage_key" json:"storage_key"`
	StorageVersion string `gorm:"column:storage_version" json:"storage_version,omitempty"`
	Checksum       string `gorm:"column:checksum" json:"checksum,omitempty"`
	IsEncrypted    bool   `gorm:"not null;default:true;column:is_encrypted" json:"is_encrypted"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }

func (d *Document) BeforeSave(*gorm.DB) error {
	if !d.DocumentType.Valid() {
		return fmt.Errorf("%w: document_type %q", bhnerr.ErrEnumViolation, d.DocumentType)
	}
	return nil
}
