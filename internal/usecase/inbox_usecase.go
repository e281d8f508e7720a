package usecase

import (
	"context"

	"fivestar/internal/domain/entity"

	"github.com/google/uuid"
)

// InboxUsecase defines the interface for inbox reconciliation.
type InboxUsecase interface {
	// BuildInbox reconciles personal notifications, active broadcasts, and
	// the one-time welcome placeholder into day buckets. A failing source
	// degrades to empty rather than failing the whole inbox. A zero userID
	// builds the guest view (broadcasts and placeholder only).
	BuildInbox(ctx context.Context, userID uuid.UUID) (*entity.Inbox, error)

	// AcknowledgePlaceholder marks the welcome placeholder as seen for the
	// identity, so it never reappears on this device. Idempotent.
	AcknowledgePlaceholder(ctx context.Context, userID uuid.UUID) error

	// UnreadCount returns the number of unread personal notifications.
	// Never negative; zero for guests.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
