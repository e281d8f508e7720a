// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceInfo carries the device metadata persisted alongside a delivery token.
type DeviceInfo struct {
	UserAgent string `json:"user_agent"` // The client's user agent string.
	Platform  string `json:"platform"`   // Device platform (web, ios, android).
	Language  string `json:"language"`   // The client's preferred language.
}

// Fingerprint returns a compact identifier for the device, used when
// requesting a registration token from the delivery channel.
func (d DeviceInfo) Fingerprint() string {
	return d.Platform + "/" + d.Language
}

// DeliveryToken represents a push-channel registration for one device/session.
// The token value itself is the remote-store key, which makes the value
// unique system-wide. While an identity is signed in, exactly one token is
// associated with it per device; the token is removed on sign-out.
type DeliveryToken struct {
	Token         string     `json:"token"`            // The registration token value (primary key).
	UserID        uuid.UUID  `json:"user_id"`          // The identity this token delivers to.
	DeviceInfo    DeviceInfo `json:"device_info"`      // Device metadata captured at registration.
	IsDevModeStub bool       `json:"is_dev_mode_stub"` // True when real delivery could not be established.
	CreatedAt     time.Time  `json:"created_at"`       // Server-assigned creation timestamp.
	UpdatedAt     time.Time  `json:"updated_at"`       // Server-assigned update timestamp.
	LastUsed      time.Time  `json:"last_used"`        // Server-assigned last-used timestamp.
}
