// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fivestar/internal/domain/entity"
)

// BroadcastRepository defines the read side of admin broadcast persistence.
// Broadcasts are authored by an external admin tool; this engine only lists
// the active ones.
type BroadcastRepository interface {
	// FindActiveBroadcasts retrieves up to limit active broadcasts, ordered
	// by creation time descending.
	FindActiveBroadcasts(ctx context.Context, limit int) ([]*entity.BroadcastNotification, error)
}
