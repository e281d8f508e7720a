package usecase

import (
	"fivestar/internal/domain/entity"

	"github.com/google/uuid"
)

// ToastUsecase defines the interface for the ephemeral toast queue. The
// queue lives in memory only and is empty after a restart.
type ToastUsecase interface {
	// Push enqueues a toast built from the message and returns its id. The
	// toast expires a fixed interval after its own insertion, unaffected by
	// later pushes.
	Push(msg *entity.PushMessage) uuid.UUID

	// Remove dismisses a toast early. Removing an expired or unknown id is
	// a no-op.
	Remove(id uuid.UUID)

	// Active returns the live toasts in insertion order.
	Active() []entity.Toast
}
