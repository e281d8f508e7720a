package usecase

import (
	"context"

	"fivestar/internal/domain/entity"
)

// PermissionUsecase defines the interface for the process-wide push
// permission ledger. Exactly one ledger exists per process.
type PermissionUsecase interface {
	// Request resolves the permission state, prompting the platform at most
	// once. A prior denial is terminal: the user is never re-prompted.
	Request(ctx context.Context) (entity.PermissionStatus, error)

	// Current reads the ledger state without prompting.
	Current() entity.PermissionStatus
}
