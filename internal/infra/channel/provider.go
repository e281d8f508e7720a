package channel

import (
	"context"
	"log/slog"

	"fivestar/config"
	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/service"

	"go.uber.org/fx"
)

// noopBridge is the PlatformBridge used when no bridge daemon is configured.
// Every probe reads as unsupported, which lands the acquisition ladder on
// its dev-mode rung.
type noopBridge struct {
	logger *slog.Logger
}

func (b *noopBridge) Supported(ctx context.Context) bool {
	return false
}

func (b *noopBridge) RequestPermission(ctx context.Context) (entity.PermissionStatus, error) {
	return entity.PermissionUnknown, service.ErrUnsupportedEnvironment
}

func (b *noopBridge) RegisterRelay(ctx context.Context, init *service.RelayInitMessage) error {
	return service.ErrUnsupportedEnvironment
}

func (b *noopBridge) HasCredential() bool {
	return false
}

func (b *noopBridge) IssueToken(ctx context.Context, fingerprint string) (string, error) {
	return "", service.ErrUnsupportedEnvironment
}

// BridgeParams holds dependencies for PlatformBridge, injected by Fx
type BridgeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPlatformBridge creates a PlatformBridge based on configuration
func NewPlatformBridge(params BridgeParams) service.PlatformBridge {
	cfg := params.Config.Channel

	if cfg == nil || cfg.BridgeEndpoint == "" {
		params.Logger.Info("Delivery channel bridge not configured, using no-op bridge")

		return &noopBridge{logger: params.Logger}
	}

	params.Logger.Info("Using HTTP delivery channel bridge",
		slog.String("endpoint", cfg.BridgeEndpoint),
		slog.Bool("credential_configured", cfg.VapidKey != ""),
	)

	return NewHTTPBridge(cfg.BridgeEndpoint, cfg.VapidKey, params.Logger)
}

// Module provides the delivery channel FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPlatformBridge),
)
