// Package service defines the interfaces for external collaborators the
// use cases depend on.
package service

import (
	"context"

	"fivestar/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnsupportedEnvironment is returned by bridge operations when the
// underlying platform primitive is structurally unavailable (non-secure
// origin, missing permission API, absent worker registration). Callers
// treat it as an expected degradation, never as a hard failure.
var ErrUnsupportedEnvironment = errors.New("delivery channel unsupported in this environment")

// RelayInitType is the single message type of the relay worker protocol.
const RelayInitType = "INIT_FIREBASE"

// RelayInitMessage is posted to the background relay worker once after it
// reports ready, forwarding the current channel configuration.
type RelayInitMessage struct {
	Type   string            `json:"type"`
	Config map[string]string `json:"config"`
}

// PlatformBridge abstracts the platform delivery channel: capability
// detection, the one-shot permission prompt, relay worker registration, and
// registration-token issuance. Each method maps to one tier of the token
// acquisition ladder so tiers stay independently testable.
type PlatformBridge interface {
	// Supported reports whether the channel's underlying support primitive
	// is available at all.
	Supported(ctx context.Context) bool

	// RequestPermission issues the platform permission prompt and blocks
	// until the platform resolves it. There is no timeout; the prompt
	// resolves only when the user decides.
	RequestPermission(ctx context.Context) (entity.PermissionStatus, error)

	// RegisterRelay registers the background relay worker and forwards it
	// the channel configuration.
	RegisterRelay(ctx context.Context, init *RelayInitMessage) error

	// HasCredential reports whether the cryptographic key required for
	// registration is configured.
	HasCredential() bool

	// IssueToken requests a real registration token for the given device
	// fingerprint. An empty token with a nil error means the platform had
	// no token available.
	IssueToken(ctx context.Context, fingerprint string) (string, error)
}
