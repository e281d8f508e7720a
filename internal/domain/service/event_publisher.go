package service

import (
	"context"
)

// PushNotificationBody is the optional notification block of a push event.
// All fields are optional on the wire; the router supplies defaults.
type PushNotificationBody struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
}

// PushEvent represents an inbound or outbound push message envelope carried
// over the event bus to the notify worker.
type PushEvent struct {
	RequestID    string                `json:"request_id,omitempty"` // For distributed tracing
	Token        string                `json:"token,omitempty"`      // Target delivery token, when already resolved
	UserID       string                `json:"user_id,omitempty"`    // Target identity
	Notification *PushNotificationBody `json:"notification,omitempty"`
	Data         map[string]string     `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing push events to a message queue
type EventPublisher interface {
	// PublishPushEvent publishes a push event for async processing
	PublishPushEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
