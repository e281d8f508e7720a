package usecase

import (
	"context"

	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/service"
)

// MessageHandler consumes a normalized push message on the foreground path.
type MessageHandler func(msg *entity.PushMessage)

// RouterUsecase defines the interface for the foreground message router.
// Messages are delivered strictly in arrival order; there is at most one
// logical listener at a time.
type RouterUsecase interface {
	// Subscribe installs handler as the foreground listener and returns its
	// unsubscribe function. Re-subscribing replaces the prior listener;
	// unsubscribe is idempotent and only removes the handler it belongs to.
	// When the delivery channel is unsupported the handler is never invoked
	// and the returned unsubscribe is a no-op.
	Subscribe(handler MessageHandler) (unsubscribe func())

	// Deliver normalizes an inbound push event, invokes the subscribed
	// handler, and surfaces the message through the platform channel when
	// push permission is granted.
	Deliver(ctx context.Context, event *service.PushEvent) error
}
