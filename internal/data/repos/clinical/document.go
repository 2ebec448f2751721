package clinical

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/subject"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

type DocumentRepo interface {
	// Create attaches the document to at most one subject; the tagged ref is
	// split into the nullable FK columns before the row is written.
	Create(ctx context.Context, tx *gorm.DB, doc *types.Document, ref types.SubjectRef) (*types.Document, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Document, error)
	ListForSubject(ctx context.Context, tx *gorm.DB, ref types.SubjectRef, limit int) ([]*types.Document, error)
}

type documentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDocumentRepo(gdb *gorm.DB, baseLog *logger.Logger) DocumentRepo {
	return &documentRepo{db: gdb, log: baseLog.With("repo", "DocumentRepo")}
}

var documentSubjectKinds = []subject.Kind{
	subject.KindPatient, subject.KindHealthRecord, subject.KindBirthRegistration,
}

func (dr *documentRepo) Create(ctx context.Context, tx *gorm.DB, doc *types.Document, ref types.SubjectRef) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", bhnerr.ErrInvalidArgument)
	}
	if err := ref.Validate(documentSubjectKinds...); err != nil {
		return nil, err
	}
	if doc.PatientID != nil || doc.HealthRecordID != nil || doc.BirthRegistrationID != nil {
		return nil, fmt.Errorf("%w: subject must be passed as a ref, not preset columns", bhnerr.ErrInvalidArgument)
	}

	cols := ref.Columns(documentSubjectKinds...)
	doc.PatientID, doc.HealthRecordID, doc.BirthRegistrationID = cols[0], cols[1], cols[2]

	if err := transaction.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return doc, nil
}

func (dr *documentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.Document
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (dr *documentRepo) ListForSubject(ctx context.Context, tx *gorm.DB, ref types.SubjectRef, limit int) ([]*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if ref.IsZero() {
		return nil, fmt.Errorf("%w: subject required", bhnerr.ErrInvalidArgument)
	}
	if err := ref.Validate(documentSubjectKinds...); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	var column string
	switch ref.Kind {
	case subject.KindPatient:
		column = "patient_id"
	case subject.KindHealthRecord:
		column = "health_record_id"
	case subject.KindBirthRegistration:
		column = "birth_registration_id"
	}

	var results []*types.Document
	if err := transaction.WithContext(ctx).
		Where(column+" = ?", ref.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}
