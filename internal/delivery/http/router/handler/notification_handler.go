package handler

import (
	"log/slog"
	"net/http"

	"fivestar/internal/delivery/http/middleware"
	"fivestar/internal/delivery/http/response"
	domainerrors "fivestar/internal/domain/errors"
	"fivestar/internal/domain/repository"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for inbox and read-state handlers.
type NotificationHandler struct {
	inbox     usecase.InboxUsecase
	readState usecase.ReadStateUsecase
	logger    *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(inbox usecase.InboxUsecase, readState usecase.ReadStateUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		inbox:     inbox,
		readState: readState,
		logger:    logger,
	}
}

// GetInbox handles retrieving the reconciled, day-bucketed inbox. Guests get
// broadcasts and the welcome placeholder only.
func (h *NotificationHandler) GetInbox(c echo.Context) error {
	userID := middleware.UserID(c)

	inbox, err := h.inbox.BuildInbox(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inbox, "Inbox retrieved successfully")
}

// GetUnreadCount handles retrieving the unread badge count.
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID := middleware.UserID(c)

	count, err := h.inbox.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkRead handles marking a single personal notification read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notificationID, err := h.pathID(c)
	if err != nil {
		return err
	}

	transitioned, err := h.readState.MarkRead(c.Request().Context(), notificationID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"transitioned": transitioned}, "Notification marked read")
}

// MarkAllRead handles marking every unread notification of the identity read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID := middleware.UserID(c)

	marked, err := h.readState.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": marked}, "All notifications marked read")
}

// DeleteNotification handles removing a single personal notification.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	notificationID, err := h.pathID(c)
	if err != nil {
		return err
	}

	if err := h.readState.DeleteNotification(c.Request().Context(), notificationID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// DeleteAllNotifications handles clearing every personal notification of the
// identity.
func (h *NotificationHandler) DeleteAllNotifications(c echo.Context) error {
	userID := middleware.UserID(c)

	removed, err := h.readState.DeleteAllForUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed}, "Notifications cleared")
}

// DismissBroadcast handles hiding a broadcast on this device.
func (h *NotificationHandler) DismissBroadcast(c echo.Context) error {
	broadcastID, err := h.pathID(c)
	if err != nil {
		return err
	}

	if err := h.readState.DismissBroadcast(c.Request().Context(), broadcastID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Broadcast dismissed")
}

// AcknowledgePlaceholder handles marking the welcome placeholder as seen.
func (h *NotificationHandler) AcknowledgePlaceholder(c echo.Context) error {
	userID := middleware.UserID(c)

	if err := h.inbox.AcknowledgePlaceholder(c.Request().Context(), userID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Placeholder acknowledged")
}

// pathID parses the :id path parameter.
func (h *NotificationHandler) pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	return id, nil
}

// handleAppError maps domain failures to the response envelope.
func (h *NotificationHandler) handleAppError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrIdentityRequired):
		return response.Unauthorized(c, domainerrors.ErrIdentityRequired.ErrorCode(), domainerrors.ErrIdentityRequired.Message())
	case errors.Is(err, repository.ErrNotificationNotFound):
		return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
