package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fivestar/config"
	deliverycontext "fivestar/internal/delivery/context"
	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/repository"
	"fivestar/internal/domain/service"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Degradation messages, one per acquisition tier. Each names the reason the
// environment fell back to a dev-mode stub token.
const (
	msgChannelUnsupported   = "push delivery is not supported in this environment"
	msgRelayUnavailable     = "background worker requires a secure context"
	msgCredentialMissing    = "push credential is not configured"
	msgNoRegistrationToken  = "platform returned no registration token"
	enabledNotificationType = "system"
)

// acquisitionTier is one rung of the token acquisition ladder. A tier either
// passes (acquisition continues), resolves the acquisition with a result, or
// fails it with an error.
type acquisitionTier struct {
	name string
	run  func(ctx context.Context, device entity.DeviceInfo) (*usecase.AcquireResult, error)
}

type tokenService struct {
	bridge      service.PlatformBridge
	permissions usecase.PermissionUsecase
	tokenRepo   repository.TokenRepository
	notifyRepo  repository.NotificationRepository
	publisher   service.EventPublisher
	relayConfig map[string]string
	logger      *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	Bridge      service.PlatformBridge
	Permissions usecase.PermissionUsecase
	TokenRepo   repository.TokenRepository
	NotifyRepo  repository.NotificationRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	var relayConfig map[string]string
	if params.Config != nil && params.Config.Channel != nil {
		relayConfig = params.Config.Channel.RelayConfig
	}

	return &tokenService{
		bridge:      params.Bridge,
		permissions: params.Permissions,
		tokenRepo:   params.TokenRepo,
		notifyRepo:  params.NotifyRepo,
		publisher:   params.Publisher,
		relayConfig: relayConfig,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AcquireToken resolves a delivery token and persists the outcome.
func (srv *tokenService) AcquireToken(ctx context.Context, userID uuid.UUID, device entity.DeviceInfo) (*usecase.AcquireResult, error) {
	if userID == uuid.Nil {
		return nil, usecase.ErrIdentityRequired
	}

	result, err := srv.resolveToken(ctx, device)
	if err != nil {
		return nil, err
	}

	if result.IsDevModeStub {
		srv.log(ctx).Warn("falling back to dev-mode stub token",
			slog.String("reason", result.Message),
		)
	}

	if err := srv.registerToken(ctx, userID, device, result); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveToken runs the capability probe, then the permission gate, then the
// remaining acquisition tiers. The probe comes first: an unsupported channel
// has no prompt to show, and its stub keeps preferences persistable in every
// deployment environment.
func (srv *tokenService) resolveToken(ctx context.Context, device entity.DeviceInfo) (*usecase.AcquireResult, error) {
	if result, err := srv.tierCapability(ctx, device); err != nil || result != nil {
		return result, err
	}

	status, err := srv.permissions.Request(ctx)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedEnvironment) {
			// A channel that cannot prompt is as good as absent.
			return stubResult(msgChannelUnsupported), nil
		}

		return nil, &usecase.AcquisitionError{Cause: err}
	}
	if status != entity.PermissionGranted {
		return nil, usecase.ErrPermissionDenied
	}

	return srv.climbLadder(ctx, device)
}

// climbLadder evaluates the post-permission tiers in order. The first tier
// that resolves wins; tiers that pass hand over to the next one.
func (srv *tokenService) climbLadder(ctx context.Context, device entity.DeviceInfo) (*usecase.AcquireResult, error) {
	tiers := []acquisitionTier{
		{name: "relay", run: srv.tierRelay},
		{name: "credential", run: srv.tierCredential},
		{name: "issue", run: srv.tierIssue},
	}

	for _, tier := range tiers {
		result, err := tier.run(ctx, device)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}

	// The issue tier always resolves; reaching here means a tier was
	// miswired.
	return nil, &usecase.AcquisitionError{Cause: errors.New("acquisition ladder resolved no tier")}
}

// tierCapability degrades to a stub when the channel's support primitive is
// absent.
func (srv *tokenService) tierCapability(ctx context.Context, _ entity.DeviceInfo) (*usecase.AcquireResult, error) {
	if !srv.bridge.Supported(ctx) {
		return stubResult(msgChannelUnsupported), nil
	}

	return nil, nil
}

// tierRelay registers the background relay worker, forwarding the channel
// configuration. Registration failure is an expected degradation.
func (srv *tokenService) tierRelay(ctx context.Context, _ entity.DeviceInfo) (*usecase.AcquireResult, error) {
	init := &service.RelayInitMessage{
		Type:   service.RelayInitType,
		Config: srv.relayConfig,
	}
	if err := srv.bridge.RegisterRelay(ctx, init); err != nil {
		srv.log(ctx).Debug("relay registration failed",
			slog.String("error", err.Error()),
		)

		return stubResult(msgRelayUnavailable), nil
	}

	return nil, nil
}

// tierCredential degrades to a stub when no registration credential is
// configured.
func (srv *tokenService) tierCredential(_ context.Context, _ entity.DeviceInfo) (*usecase.AcquireResult, error) {
	if !srv.bridge.HasCredential() {
		return stubResult(msgCredentialMissing), nil
	}

	return nil, nil
}

// tierIssue requests the real registration token. An empty token or the
// known unsupported-environment failure degrades to a stub; anything else is
// an unexpected acquisition failure.
func (srv *tokenService) tierIssue(ctx context.Context, device entity.DeviceInfo) (*usecase.AcquireResult, error) {
	token, err := srv.bridge.IssueToken(ctx, device.Fingerprint())
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedEnvironment) {
			return stubResult(msgNoRegistrationToken), nil
		}

		return nil, &usecase.AcquisitionError{Cause: err}
	}
	if token == "" {
		return stubResult(msgNoRegistrationToken), nil
	}

	return &usecase.AcquireResult{Token: token}, nil
}

// registerToken persists the acquired token, writes the "notifications
// enabled" personal notification, and publishes the token-registered event.
func (srv *tokenService) registerToken(ctx context.Context, userID uuid.UUID, device entity.DeviceInfo, result *usecase.AcquireResult) error {
	deliveryToken := &entity.DeliveryToken{
		Token:         result.Token,
		UserID:        userID,
		DeviceInfo:    device,
		IsDevModeStub: result.IsDevModeStub,
	}

	if err := srv.tokenRepo.SaveToken(ctx, deliveryToken); err != nil {
		return fmt.Errorf("failed to save delivery token: %w", err)
	}

	notification := &entity.PersonalNotification{
		UserID:    userID,
		Type:      enabledNotificationType,
		Title:     "Notifications enabled",
		Body:      "You will now receive updates from 5Star.",
		Icon:      entity.DefaultNotificationIcon,
		CreatedAt: time.Now(),
	}
	if err := srv.notifyRepo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to record enablement notification: %w", err)
	}

	event := &service.PushEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Token:     result.Token,
		UserID:    userID.String(),
		Data: map[string]string{
			"event":            "token_registered",
			"is_dev_mode_stub": fmt.Sprintf("%t", result.IsDevModeStub),
		},
	}
	if err := srv.publisher.PublishPushEvent(ctx, event); err != nil {
		// Registration already succeeded; the event bus being down must not
		// undo it.
		srv.log(ctx).Warn("failed to publish token-registered event",
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// ReleaseToken removes the given token from the remote store.
func (srv *tokenService) ReleaseToken(ctx context.Context, token string) error {
	if err := srv.tokenRepo.DeleteToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			// Sign-out after an expired or never-registered token; nothing
			// to release.
			return nil
		}

		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}

// ReleaseAllForUser removes every token registered for the identity.
func (srv *tokenService) ReleaseAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, usecase.ErrIdentityRequired
	}

	removed, err := srv.tokenRepo.DeleteTokensByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tokens for user: %w", err)
	}

	return removed, nil
}

// stubResult builds the dev-mode fallback for a degraded tier.
func stubResult(message string) *usecase.AcquireResult {
	return &usecase.AcquireResult{
		Token:         "dev-" + uuid.NewString(),
		IsDevModeStub: true,
		Message:       message,
	}
}
