package service

import (
	"context"
)

// NotificationService defines the interface for surfacing platform-level
// push notifications through the delivery channel.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
