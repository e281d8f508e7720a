// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// GuestIdentityKey is the local-store identity key used when no identity is
// signed in.
const GuestIdentityKey = "guest"

// LocalStateRepository defines the interface for device-local state: the
// broadcast dismiss set and the per-identity placeholder flag. This state is
// never synced to the remote store. Concurrent writers race with last-writer
// wins semantics; both operations are idempotent so this is acceptable.
type LocalStateRepository interface {
	// DismissedBroadcasts returns the set of broadcast ids this device has
	// hidden. The set only grows.
	DismissedBroadcasts(ctx context.Context) (map[uuid.UUID]struct{}, error)

	// AddDismissedBroadcast records a broadcast id as dismissed. Adding an
	// id twice has the effect of adding it once.
	AddDismissedBroadcast(ctx context.Context, id uuid.UUID) error

	// PlaceholderAcknowledged reports whether the welcome placeholder has
	// been acknowledged for the given identity key on this device.
	PlaceholderAcknowledged(ctx context.Context, identityKey string) (bool, error)

	// AcknowledgePlaceholder marks the welcome placeholder as seen for the
	// given identity key. Idempotent.
	AcknowledgePlaceholder(ctx context.Context, identityKey string) error
}

// IdentityKey maps an identity to its local-store key. The zero UUID maps
// to the guest key.
func IdentityKey(userID uuid.UUID) string {
	if userID == uuid.Nil {
		return GuestIdentityKey
	}

	return userID.String()
}
