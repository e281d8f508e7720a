// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"fmt"
	"sync"

	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/service"
	"fivestar/internal/usecase"
)

// permissionService is the process-wide push permission ledger. Access is
// serialized by a mutex so concurrent requests observe one consistent state
// and at most one prompt is in flight.
type permissionService struct {
	mu     sync.Mutex
	status entity.PermissionStatus
	bridge service.PlatformBridge
}

// NewPermissionService creates the permission ledger. Wired as an Fx
// singleton so exactly one ledger exists per process.
func NewPermissionService(bridge service.PlatformBridge) usecase.PermissionUsecase {
	return &permissionService{
		status: entity.PermissionUnknown,
		bridge: bridge,
	}
}

// Request resolves the permission state, prompting the platform at most once.
func (s *permissionService) Request(ctx context.Context) (entity.PermissionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A prior decision is terminal either way: granted never re-prompts,
	// denied is never asked again.
	if s.status != entity.PermissionUnknown {
		return s.status, nil
	}

	status, err := s.bridge.RequestPermission(ctx)
	if err != nil {
		// The prompt never happened, so the ledger stays unknown and a
		// later request may try again.
		return entity.PermissionUnknown, fmt.Errorf("failed to request push permission: %w", err)
	}

	// A dismissed prompt resolves to unknown and remains re-promptable.
	s.status = status

	return s.status, nil
}

// Current reads the ledger state without prompting.
func (s *permissionService) Current() entity.PermissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}
