package ops

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthhealthnetwork/bhn-backend/internal/data/db"
	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/subject"
	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
	"github.com/birthhealthnetwork/bhn-backend/internal/pkg/logger"
)

// DeliveryChannel names one of the per-channel sent flags.
type DeliveryChannel string

const (
	ChannelEmail DeliveryChannel = "email"
	ChannelSMS   DeliveryChannel = "sms"
	ChannelPush  DeliveryChannel = "push"
)

type NotificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, n *types.Notification, ref types.SubjectRef) (*types.Notification, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Notification, error)
	ListUnreadByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Notification, error)
	MarkRead(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) error
	MarkDelivered(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID, channel DeliveryChannel) error
}

type notificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationRepo(gdb *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	return &notificationRepo{db: gdb, log: baseLog.With("repo", "NotificationRepo")}
}

var notificationSubjectKinds = []subject.Kind{
	subject.KindAppointment, subject.KindHealthRecord, subject.KindBirthRegistration,
}

func (nr *notificationRepo) Create(ctx context.Context, tx *gorm.DB, n *types.Notification, ref types.SubjectRef) (*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if n == nil {
		return nil, fmt.Errorf("%w: nil notification", bhnerr.ErrInvalidArgument)
	}
	if err := ref.Validate(notificationSubjectKinds...); err != nil {
		return nil, err
	}
	if n.AppointmentID != nil || n.HealthRecordID != nil || n.BirthRegistrationID != nil {
		return nil, fmt.Errorf("%w: subject must be passed as a ref, not preset columns", bhnerr.ErrInvalidArgument)
	}

	cols := ref.Columns(notificationSubjectKinds...)
	n.AppointmentID, n.HealthRecordID, n.BirthRegistrationID = cols[0], cols[1], cols[2]

	if err := transaction.WithContext(ctx).Create(n).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return n, nil
}

func (nr *notificationRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.Notification
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (nr *notificationRepo) ListUnreadByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.Notification
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND NOT is_read", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, db.ClassifyError(err)
	}
	return results, nil
}

func (nr *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("id = ?", notificationID).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now().UTC(),
		}).Error)
}

func (nr *notificationRepo) MarkDelivered(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID, channel DeliveryChannel) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var column string
	switch channel {
	case ChannelEmail:
		column = "email_sent"
	case ChannelSMS:
		column = "sms_sent"
	case ChannelPush:
		column = "push_sent"
	default:
		return fmt.Errorf("%w: delivery channel %q", bhnerr.ErrInvalidArgument, channel)
	}
	return db.ClassifyError(transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("id = ?", notificationID).
		Update(column, true).Error)
}
