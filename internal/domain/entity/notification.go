// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PersonalNotification represents a notification addressed to one identity.
// Records are created server-side or by the token save step; the read flag
// is mutated only by the read-state tracker and never flips back to false.
type PersonalNotification struct {
	ID        uuid.UUID         `json:"id"`                   // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID         `json:"user_id"`              // The identity this notification is addressed to.
	Type      string            `json:"type"`                 // Notification type (fixture_created, match_live, article_published, ...).
	Title     string            `json:"title"`                // Short headline shown in the inbox.
	Body      string            `json:"body"`                 // Full message body.
	Icon      string            `json:"icon"`                 // Icon path or URL.
	Data      map[string]string `json:"data,omitempty"`       // Free-form payload (deep-link URL, fixture id, ...).
	Read      bool              `json:"read"`                 // Whether the identity has read this notification.
	ReadAt    *time.Time        `json:"read_at,omitempty"`    // When the notification was marked read.
	Delivered bool              `json:"delivered"`            // Whether push delivery was confirmed.
	CreatedAt time.Time         `json:"created_at"`           // Server-assigned creation timestamp.
	ExpiresAt *time.Time        `json:"expires_at,omitempty"` // Optional expiration.
}

// BroadcastNotification represents an admin-authored message to all
// identities. Broadcasts are never marked read server-side; dismissal is
// recorded only in the device-local dismiss set.
type BroadcastNotification struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the broadcast.
	Title     string    `json:"title"`      // Short headline.
	Body      string    `json:"body"`       // Full message body.
	Type      string    `json:"type"`       // Broadcast type (info, announcement, warning, update, event).
	Priority  string    `json:"priority"`   // Priority (high, normal, low). Kept as data; inbox order is by creation time.
	Active    bool      `json:"active"`     // Inactive broadcasts are never surfaced.
	CreatedAt time.Time `json:"created_at"` // Server-assigned creation timestamp.
}
