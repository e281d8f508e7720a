package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "fivestar/internal/delivery/context"
	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/service"
	"fivestar/internal/usecase"

	"go.uber.org/fx"
)

// devTokenPrefix marks dev-mode stub tokens, which never reach the real
// delivery channel.
const devTokenPrefix = "dev-"

// routerService is the foreground message router. There is at most one
// logical listener; delivery happens synchronously in arrival order.
type routerService struct {
	mu          sync.Mutex
	generation  uint64
	handler     usecase.MessageHandler
	bridge      service.PlatformBridge
	permissions usecase.PermissionUsecase
	notifySvc   service.NotificationService
	logger      *slog.Logger
}

// RouterServiceParams holds dependencies for RouterService, injected by Fx.
type RouterServiceParams struct {
	fx.In

	Bridge      service.PlatformBridge
	Permissions usecase.PermissionUsecase
	NotifySvc   service.NotificationService
	Logger      *slog.Logger
}

// NewRouterService is the constructor for routerService.
func NewRouterService(params RouterServiceParams) usecase.RouterUsecase {
	return &routerService{
		bridge:      params.Bridge,
		permissions: params.Permissions,
		notifySvc:   params.NotifySvc,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *routerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe installs handler as the single foreground listener.
func (srv *routerService) Subscribe(handler usecase.MessageHandler) func() {
	if !srv.bridge.Supported(context.Background()) {
		// Unsupported channel: no messages will ever arrive, so there is
		// nothing to tear down.
		return func() {}
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	// Replacing the handler bumps the generation so a stale unsubscribe
	// cannot remove its successor.
	srv.generation++
	gen := srv.generation
	srv.handler = handler

	return func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()

		if srv.generation == gen {
			srv.handler = nil
		}
	}
}

// Deliver normalizes the inbound event, invokes the listener, and surfaces
// the message through the platform channel when permission is granted.
func (srv *routerService) Deliver(ctx context.Context, event *service.PushEvent) error {
	msg := normalizeMessage(event)

	srv.mu.Lock()
	handler := srv.handler
	srv.mu.Unlock()

	if handler != nil {
		handler(msg)
	}

	if srv.permissions.Current() != entity.PermissionGranted {
		srv.log(ctx).Debug("permission not granted, skipping platform surfacing")

		return nil
	}

	if event.Token == "" || strings.HasPrefix(event.Token, devTokenPrefix) {
		srv.log(ctx).Debug("no deliverable token, skipping platform surfacing")

		return nil
	}

	if err := srv.notifySvc.SendSingleNotification(ctx, event.Token, msg.Title, msg.Body, msg.Data); err != nil {
		return fmt.Errorf("failed to surface notification: %w", err)
	}

	return nil
}

// normalizeMessage fills payload defaults: every field of an inbound push
// event is optional on the wire.
func normalizeMessage(event *service.PushEvent) *entity.PushMessage {
	msg := &entity.PushMessage{
		Title:     entity.DefaultNotificationTitle,
		Icon:      entity.DefaultNotificationIcon,
		Badge:     entity.DefaultNotificationIcon,
		Data:      event.Data,
		Timestamp: time.Now(),
	}

	if n := event.Notification; n != nil {
		if n.Title != "" {
			msg.Title = n.Title
		}
		if n.Body != "" {
			msg.Body = n.Body
		}
		if n.Icon != "" {
			msg.Icon = n.Icon
		}
		if n.Badge != "" {
			msg.Badge = n.Badge
		}
	}

	return msg
}
