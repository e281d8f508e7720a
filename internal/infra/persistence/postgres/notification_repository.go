// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"fivestar/internal/domain/entity"
	domainerrors "fivestar/internal/domain/errors"
	"fivestar/internal/domain/repository"
	"fivestar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new personal notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.PersonalNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid identity reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByUser retrieves up to limit notifications for an identity,
// newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.PersonalNotification, error) {
	var notificationModels []*model.PersonalNotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return toNotificationDomainList(notificationModels), nil
}

// FindUnreadByUser retrieves all unread notifications for an identity, newest first.
func (repo *notificationRepository) FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PersonalNotification, error) {
	var notificationModels []*model.PersonalNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unread notifications by user")
	}

	return toNotificationDomainList(notificationModels), nil
}

// MarkRead sets the read flag on a single notification. The WHERE clause only
// matches unread rows, so an already-read row keeps its original read_at and
// the returned bool reports false.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PersonalNotificationModel{}).
		Where("id = ? AND read = ?", id, false).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": readAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark notification read")
	}

	return result.RowsAffected > 0, nil
}

// MarkManyRead sets the read flag on the given rows in a single statement.
func (repo *notificationRepository) MarkManyRead(ctx context.Context, ids []uuid.UUID, readAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PersonalNotificationModel{}).
		Where("id IN ? AND read = ?", ids, false).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": readAt,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// CountUnread returns the number of unread notifications for an identity.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PersonalNotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// DeleteNotification removes a notification by its ID.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PersonalNotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteNotificationsByUser removes every notification addressed to an identity.
func (repo *notificationRepository) DeleteNotificationsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PersonalNotificationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notifications by user")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM PersonalNotificationModel to a domain PersonalNotification entity.
func toNotificationDomain(data *model.PersonalNotificationModel) *entity.PersonalNotification {
	if data == nil {
		return nil
	}

	return &entity.PersonalNotification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Body:      data.Body,
		Icon:      data.Icon,
		Data:      data.Data,
		Read:      data.Read,
		ReadAt:    data.ReadAt,
		Delivered: data.Delivered,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

func toNotificationDomainList(models []*model.PersonalNotificationModel) []*entity.PersonalNotification {
	notifications := make([]*entity.PersonalNotification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain PersonalNotification entity to a GORM PersonalNotificationModel.
func fromNotificationDomain(data *entity.PersonalNotification) *model.PersonalNotificationModel {
	if data == nil {
		return nil
	}

	return &model.PersonalNotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Body:      data.Body,
		Icon:      data.Icon,
		Data:      data.Data,
		Read:      data.Read,
		ReadAt:    data.ReadAt,
		Delivered: data.Delivered,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
