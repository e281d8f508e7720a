package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"fivestar/config"
	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/repository"
	"fivestar/internal/domain/service"
	"fivestar/internal/infra/channel"
	mockRepo "fivestar/internal/mocks/repository"
	mockService "fivestar/internal/mocks/service"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
)

// tokenServiceFixtures holds all test dependencies for token lifecycle tests.
type tokenServiceFixtures struct {
	service    usecase.TokenUsecase
	bridge     *mockService.MockPlatformBridge
	tokenRepo  *mockRepo.MockTokenRepository
	notifyRepo *mockRepo.MockNotificationRepository
	publisher  *mockService.MockEventPublisher
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	bridge := mockService.NewMockPlatformBridge(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	cfg := &config.Config{}
	cfg.Channel = &config.ChannelConfig{
		RelayConfig: map[string]string{"projectId": "fivestar-test"},
	}

	svc := NewTokenService(TokenServiceParams{
		Bridge:      bridge,
		Permissions: NewPermissionService(bridge),
		TokenRepo:   tokenRepo,
		NotifyRepo:  notifyRepo,
		Publisher:   publisher,
		Config:      cfg,
		Logger:      slog.Default(),
	})

	return tokenServiceFixtures{
		service:    svc,
		bridge:     bridge,
		tokenRepo:  tokenRepo,
		notifyRepo: notifyRepo,
		publisher:  publisher,
	}
}

func testDevice() entity.DeviceInfo {
	return entity.DeviceInfo{
		UserAgent: "test-agent",
		Platform:  "web",
		Language:  "en-US",
	}
}

// grantPermission primes the bridge so the ledger resolves to granted.
func (fx tokenServiceFixtures) grantPermission(ctx context.Context) {
	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionGranted, nil).
		Once()
}

// expectRegistration wires the three persistence steps that follow every
// resolved acquisition.
func (fx tokenServiceFixtures) expectRegistration(ctx context.Context) {
	fx.tokenRepo.EXPECT().
		SaveToken(ctx, mock.AnythingOfType("*entity.DeliveryToken")).
		Return(nil)
	fx.notifyRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.PersonalNotification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPushEvent(ctx, mock.AnythingOfType("*service.PushEvent")).
		Return(nil)
}

func TestTokenService_AcquireToken_IdentityRequired(t *testing.T) {
	fx := createTestTokenService(t)

	result, err := fx.service.AcquireToken(context.Background(), uuid.Nil, testDevice())
	assert.ErrorIs(t, err, usecase.ErrIdentityRequired)
	assert.Nil(t, result)
}

func TestTokenService_AcquireToken_PermissionDenied(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionDenied, nil).
		Once()

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	assert.ErrorIs(t, err, usecase.ErrPermissionDenied)
	assert.Nil(t, result)
}

func TestTokenService_AcquireToken_UnsupportedChannelFallsBackToStub(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	// The capability probe fails before any permission prompt, so the
	// bridge must never be asked for one.
	fx.bridge.EXPECT().Supported(ctx).Return(false)
	fx.expectRegistration(ctx)

	result, err := fx.service.AcquireToken(ctx, userID, testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
	assert.True(t, strings.HasPrefix(result.Token, "dev-"))
	assert.Equal(t, "push delivery is not supported in this environment", result.Message)
	fx.bridge.AssertNotCalled(t, "RequestPermission", ctx)
}

// An unconfigured bridge endpoint wires the no-op bridge; acquisition in that
// environment must still resolve to a persistable dev-mode stub.
func TestTokenService_AcquireToken_NoopBridgeFallsBackToStub(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	bridge := channel.NewPlatformBridge(channel.BridgeParams{
		Config: &config.Config{},
		Logger: slog.Default(),
	})
	svc := NewTokenService(TokenServiceParams{
		Bridge:      bridge,
		Permissions: NewPermissionService(bridge),
		TokenRepo:   tokenRepo,
		NotifyRepo:  notifyRepo,
		Publisher:   publisher,
		Config:      &config.Config{},
		Logger:      slog.Default(),
	})

	ctx := context.Background()
	tokenRepo.EXPECT().
		SaveToken(ctx, mock.AnythingOfType("*entity.DeliveryToken")).
		Return(nil)
	notifyRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.PersonalNotification")).
		Return(nil)
	publisher.EXPECT().
		PublishPushEvent(ctx, mock.AnythingOfType("*service.PushEvent")).
		Return(nil)

	result, err := svc.AcquireToken(ctx, uuid.New(), testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
	assert.True(t, strings.HasPrefix(result.Token, "dev-"))
	assert.Equal(t, "push delivery is not supported in this environment", result.Message)
}

// A bridge that reports supported but cannot show a prompt degrades the same
// way as an absent channel.
func TestTokenService_AcquireToken_UnsupportedPromptFallsBackToStub(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RequestPermission(ctx).
		Return(entity.PermissionUnknown, service.ErrUnsupportedEnvironment).
		Once()
	fx.expectRegistration(ctx)

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
	assert.Equal(t, "push delivery is not supported in this environment", result.Message)
}

func TestTokenService_AcquireToken_RelayFailureFallsBackToStub(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.grantPermission(ctx)
	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RegisterRelay(ctx, mock.AnythingOfType("*service.RelayInitMessage")).
		Run(func(_ context.Context, init *service.RelayInitMessage) {
			assert.Equal(t, service.RelayInitType, init.Type)
			assert.Equal(t, "fivestar-test", init.Config["projectId"])
		}).
		Return(errors.New("registration rejected"))
	fx.expectRegistration(ctx)

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
	assert.Equal(t, "background worker requires a secure context", result.Message)
}

func TestTokenService_AcquireToken_MissingCredentialFallsBackToStub(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.grantPermission(ctx)
	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RegisterRelay(ctx, mock.AnythingOfType("*service.RelayInitMessage")).
		Return(nil)
	fx.bridge.EXPECT().HasCredential().Return(false)
	fx.expectRegistration(ctx)

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
	assert.Equal(t, "push credential is not configured", result.Message)
}

func TestTokenService_AcquireToken_EmptyTokenFallsBackToStub(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.grantPermission(ctx)
	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RegisterRelay(ctx, mock.AnythingOfType("*service.RelayInitMessage")).
		Return(nil)
	fx.bridge.EXPECT().HasCredential().Return(true)
	fx.bridge.EXPECT().IssueToken(ctx, "web/en-US").Return("", nil)
	fx.expectRegistration(ctx)

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
	assert.Equal(t, "platform returned no registration token", result.Message)
}

func TestTokenService_AcquireToken_UnsupportedIssueFailureFallsBackToStub(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.grantPermission(ctx)
	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RegisterRelay(ctx, mock.AnythingOfType("*service.RelayInitMessage")).
		Return(nil)
	fx.bridge.EXPECT().HasCredential().Return(true)
	fx.bridge.EXPECT().
		IssueToken(ctx, "web/en-US").
		Return("", fmt.Errorf("issuing: %w", service.ErrUnsupportedEnvironment))
	fx.expectRegistration(ctx)

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
	assert.Equal(t, "platform returned no registration token", result.Message)
}

func TestTokenService_AcquireToken_RealToken(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.grantPermission(ctx)
	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RegisterRelay(ctx, mock.AnythingOfType("*service.RelayInitMessage")).
		Return(nil)
	fx.bridge.EXPECT().HasCredential().Return(true)
	fx.bridge.EXPECT().IssueToken(ctx, "web/en-US").Return("fcm-real-token", nil)

	var saved *entity.DeliveryToken
	fx.tokenRepo.EXPECT().
		SaveToken(ctx, mock.AnythingOfType("*entity.DeliveryToken")).
		Run(func(_ context.Context, token *entity.DeliveryToken) {
			saved = token
		}).
		Return(nil)
	fx.notifyRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.PersonalNotification")).
		Run(func(_ context.Context, n *entity.PersonalNotification) {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, "Notifications enabled", n.Title)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPushEvent(ctx, mock.AnythingOfType("*service.PushEvent")).
		Run(func(_ context.Context, event *service.PushEvent) {
			assert.Equal(t, "fcm-real-token", event.Token)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, "token_registered", event.Data["event"])
		}).
		Return(nil)

	result, err := fx.service.AcquireToken(ctx, userID, testDevice())
	require.NoError(t, err)
	assert.False(t, result.IsDevModeStub)
	assert.Equal(t, "fcm-real-token", result.Token)
	assert.Empty(t, result.Message)

	require.NotNil(t, saved)
	assert.Equal(t, "fcm-real-token", saved.Token)
	assert.Equal(t, userID, saved.UserID)
	assert.False(t, saved.IsDevModeStub)
}

func TestTokenService_AcquireToken_UnexpectedIssueFailure(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.grantPermission(ctx)
	fx.bridge.EXPECT().Supported(ctx).Return(true)
	fx.bridge.EXPECT().
		RegisterRelay(ctx, mock.AnythingOfType("*service.RelayInitMessage")).
		Return(nil)
	fx.bridge.EXPECT().HasCredential().Return(true)
	fx.bridge.EXPECT().
		IssueToken(ctx, "web/en-US").
		Return("", errors.New("messaging backend exploded"))

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	assert.Nil(t, result)

	var acquisitionErr *usecase.AcquisitionError
	require.ErrorAs(t, err, &acquisitionErr)
	assert.Contains(t, acquisitionErr.Error(), "messaging backend exploded")
}

func TestTokenService_AcquireToken_StoreWriteFailurePropagates(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.bridge.EXPECT().Supported(ctx).Return(false)
	fx.tokenRepo.EXPECT().
		SaveToken(ctx, mock.AnythingOfType("*entity.DeliveryToken")).
		Return(errors.New("store unavailable"))

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to save delivery token")
}

func TestTokenService_AcquireToken_PublishFailureDoesNotFailAcquisition(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.bridge.EXPECT().Supported(ctx).Return(false)
	fx.tokenRepo.EXPECT().
		SaveToken(ctx, mock.AnythingOfType("*entity.DeliveryToken")).
		Return(nil)
	fx.notifyRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.PersonalNotification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPushEvent(ctx, mock.AnythingOfType("*service.PushEvent")).
		Return(errors.New("event bus down"))

	result, err := fx.service.AcquireToken(ctx, uuid.New(), testDevice())
	require.NoError(t, err)
	assert.True(t, result.IsDevModeStub)
}

func TestTokenService_ReleaseToken(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().DeleteToken(ctx, "fcm-token-1").Return(nil)

	require.NoError(t, fx.service.ReleaseToken(ctx, "fcm-token-1"))
}

func TestTokenService_ReleaseToken_MissingTokenIsNotAnError(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		DeleteToken(ctx, "gone-token").
		Return(repository.ErrTokenNotFound)

	require.NoError(t, fx.service.ReleaseToken(ctx, "gone-token"))
}

func TestTokenService_ReleaseAllForUser(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().DeleteTokensByUser(ctx, userID).Return(int64(3), nil)

	removed, err := fx.service.ReleaseAllForUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestTokenService_ReleaseAllForUser_IdentityRequired(t *testing.T) {
	fx := createTestTokenService(t)

	removed, err := fx.service.ReleaseAllForUser(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, usecase.ErrIdentityRequired)
	assert.Zero(t, removed)
}
