package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ReadStateUsecase defines the interface for read-state tracking across the
// three notification sources. Personal notifications use the remote read
// flag, broadcasts the device-local dismiss set; the placeholder is handled
// by InboxUsecase.AcknowledgePlaceholder.
type ReadStateUsecase interface {
	// MarkRead marks a single personal notification read with the current
	// server time. Already-read notifications keep their original read
	// timestamp; the returned bool reports whether the row transitioned.
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkAllRead marks every unread personal notification of the identity
	// read in one transaction and returns the number marked.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// DismissBroadcast hides a broadcast on this device. Idempotent; the
	// dismiss set only grows.
	DismissBroadcast(ctx context.Context, id uuid.UUID) error

	// DeleteNotification removes a personal notification entirely.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// DeleteAllForUser removes every personal notification addressed to the
	// identity and returns the number removed.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
