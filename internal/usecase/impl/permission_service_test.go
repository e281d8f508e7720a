package impl

import (
	"context"
	"testing"

	"fivestar/internal/domain/entity"
	mockService "fivestar/internal/mocks/service"
	"fivestar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// permissionServiceFixtures holds all test dependencies for permission ledger tests.
type permissionServiceFixtures struct {
	service usecase.PermissionUsecase
	bridge  *mockService.MockPlatformBridge
}

func createTestPermissionService(t *testing.T) permissionServiceFixtures {
	bridge := mockService.NewMockPlatformBridge(t)
	service := NewPermissionService(bridge)

	return permissionServiceFixtures{
		service: service,
		bridge:  bridge,
	}
}

func TestPermissionService_InitialStateIsUnknown(t *testing.T) {
	fx := createTestPermissionService(t)

	assert.Equal(t, entity.PermissionUnknown, fx.service.Current())
}

func TestPermissionService_Request_Granted(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()

	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionGranted, nil).
		Once()

	status, err := fx.service.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, status)
	assert.Equal(t, entity.PermissionGranted, fx.service.Current())

	// A second request must not prompt again.
	status, err = fx.service.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, status)
}

func TestPermissionService_Request_DeniedIsTerminal(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()

	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionDenied, nil).
		Once()

	status, err := fx.service.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, status)

	// The user is never re-prompted after a denial.
	status, err = fx.service.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, status)
}

func TestPermissionService_Request_DismissedPromptStaysUnknown(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()

	// The user dismissed the prompt without deciding; a later request may
	// prompt again.
	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionUnknown, nil).
		Twice()

	status, err := fx.service.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionUnknown, status)

	status, err = fx.service.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionUnknown, status)
}

func TestPermissionService_Request_BridgeFailureLeavesStateUnknown(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()

	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionUnknown, errors.New("bridge unreachable")).
		Once()

	status, err := fx.service.Request(ctx)
	assert.Error(t, err)
	assert.Equal(t, entity.PermissionUnknown, status)

	// The prompt never happened, so a retry is allowed and may succeed.
	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionGranted, nil).
		Once()

	status, err = fx.service.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, status)
}
