// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fivestar/internal/delivery/http/middleware"
	"fivestar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	TokenHandler        *handler.TokenHandler
	ToastHandler        *handler.ToastHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	tokenHandler        *handler.TokenHandler
	toastHandler        *handler.ToastHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		tokenHandler:        params.TokenHandler,
		toastHandler:        params.ToastHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Inbox routes; guests see broadcasts and the welcome placeholder
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		notificationGroup.GET("", r.notificationHandler.GetInbox)
		notificationGroup.GET("/unread-count", r.notificationHandler.GetUnreadCount)
		notificationGroup.POST("/placeholder/ack", r.notificationHandler.AcknowledgePlaceholder)
	}

	// Read-state mutations require a signed-in identity
	readGroup := e.Group("/notifications")
	readGroup.Use(r.authMiddleware.Authenticate)
	{
		readGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		readGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		readGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
		readGroup.DELETE("", r.notificationHandler.DeleteAllNotifications)
	}

	// Broadcast dismissal is device-local, so guests may dismiss too
	broadcastGroup := e.Group("/broadcasts")
	broadcastGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		broadcastGroup.POST("/:id/dismiss", r.notificationHandler.DismissBroadcast)
	}

	// Push enablement and token lifecycle
	pushGroup := e.Group("/push")
	pushGroup.Use(r.authMiddleware.Authenticate)
	{
		pushGroup.POST("/enable", r.tokenHandler.EnablePush)
		pushGroup.DELETE("/token", r.tokenHandler.ReleaseToken)
		pushGroup.DELETE("/tokens", r.tokenHandler.ReleaseAllTokens)
	}

	// Permission status is readable without an identity
	e.GET("/push/permission", r.tokenHandler.GetPermission)

	// Ephemeral toast queue
	toastGroup := e.Group("/toasts")
	{
		toastGroup.GET("", r.toastHandler.GetActiveToasts)
		toastGroup.POST("/:id/dismiss", r.toastHandler.DismissToast)
	}
}
