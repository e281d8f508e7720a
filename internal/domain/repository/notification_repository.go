// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"fivestar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a personal notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for personal-notification
// persistence in the remote store.
type NotificationRepository interface {
	// CreateNotification persists a new personal notification.
	CreateNotification(ctx context.Context, notification *entity.PersonalNotification) error

	// FindNotificationsByUser retrieves up to limit notifications for an
	// identity, ordered by creation time descending.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.PersonalNotification, error)

	// FindUnreadByUser retrieves all unread notifications for an identity,
	// ordered by creation time descending.
	FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PersonalNotification, error)

	// MarkRead sets read=true and the read timestamp on a single
	// notification. Already-read rows are left untouched; the returned bool
	// reports whether a row actually transitioned.
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) (bool, error)

	// MarkManyRead sets read=true and the read timestamp on the given rows.
	// Callers needing atomicity run this through the TransactionManager.
	MarkManyRead(ctx context.Context, ids []uuid.UUID, readAt time.Time) error

	// CountUnread returns the number of unread notifications for an identity.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteNotification removes a notification by its ID.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// DeleteNotificationsByUser removes every notification addressed to an
	// identity and returns the number of records removed.
	DeleteNotificationsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
