package usecase

import (
	"context"
	"errors"
	"fmt"

	"fivestar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrIdentityRequired is returned when token acquisition is attempted
	// without a signed-in identity.
	ErrIdentityRequired = errors.New("a signed-in identity is required to enable notifications")

	// ErrPermissionDenied is returned when the permission ledger resolves to
	// denied. No acquisition tier runs after a denial.
	ErrPermissionDenied = errors.New("push permission was denied")
)

// AcquisitionError wraps an unexpected failure during token acquisition,
// as opposed to the expected environment degradations that fall back to a
// dev-mode stub token.
type AcquisitionError struct {
	Cause error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("token acquisition failed: %v", e.Cause)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Cause
}

// AcquireResult is the outcome of a successful token acquisition. When the
// environment cannot deliver real pushes, Token is a dev-mode stub and
// Message names the tier that degraded.
type AcquireResult struct {
	Token         string `json:"token"`
	IsDevModeStub bool   `json:"is_dev_mode_stub"`
	Message       string `json:"message,omitempty"`
}

// TokenUsecase defines the interface for delivery-token lifecycle management.
type TokenUsecase interface {
	// AcquireToken walks the acquisition ladder for the given identity and
	// device, persists the resulting token, and publishes a token-registered
	// event. Every resolved outcome, real or stub, is an acquisition success.
	AcquireToken(ctx context.Context, userID uuid.UUID, device entity.DeviceInfo) (*AcquireResult, error)

	// ReleaseToken removes the given token from the remote store. Called on
	// sign-out for the current device's token.
	ReleaseToken(ctx context.Context, token string) error

	// ReleaseAllForUser removes every token registered for the identity and
	// returns the number removed. Called on account deletion.
	ReleaseAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
