// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied while normalizing an inbound push payload. All payload
// fields are optional on the wire.
const (
	DefaultNotificationTitle = "New Notification"
	DefaultNotificationIcon  = "/5Star-Logo.png"
)

// PushMessage is the normalized form of an inbound push payload, produced by
// the foreground message router before fan-out.
type PushMessage struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Icon      string            `json:"icon"`
	Badge     string            `json:"badge"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Toast is an ephemeral, self-expiring UI notification. Toasts are held in
// memory only and are cleared on process restart.
type Toast struct {
	ID        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Icon      string            `json:"icon,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
