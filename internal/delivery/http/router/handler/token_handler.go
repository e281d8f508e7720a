package handler

import (
	"log/slog"
	"net/http"

	"fivestar/internal/delivery/http/middleware"
	"fivestar/internal/delivery/http/response"
	"fivestar/internal/domain/entity"
	domainerrors "fivestar/internal/domain/errors"
	"fivestar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TokenHandler holds dependencies for push-enablement handlers.
type TokenHandler struct {
	tokens      usecase.TokenUsecase
	permissions usecase.PermissionUsecase
	logger      *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler.
func NewTokenHandler(tokens usecase.TokenUsecase, permissions usecase.PermissionUsecase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokens:      tokens,
		permissions: permissions,
		logger:      logger,
	}
}

// EnablePushRequest represents the request body for enabling notifications.
type EnablePushRequest struct {
	UserAgent string `json:"user_agent"`
	Platform  string `json:"platform" validate:"required"`
	Language  string `json:"language"`
}

// ReleaseTokenRequest represents the request body for releasing one token.
type ReleaseTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// EnablePush handles the full enablement flow: permission prompt, token
// acquisition ladder, and registration.
func (h *TokenHandler) EnablePush(c echo.Context) error {
	userID := middleware.UserID(c)

	var req EnablePushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enablement input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device := entity.DeviceInfo{
		UserAgent: req.UserAgent,
		Platform:  req.Platform,
		Language:  req.Language,
	}

	result, err := h.tokens.AcquireToken(c.Request().Context(), userID, device)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Notifications enabled")
}

// GetPermission handles reading the cached permission status without
// prompting.
func (h *TokenHandler) GetPermission(c echo.Context) error {
	status := h.permissions.Current()

	return response.Success(c, http.StatusOK, map[string]entity.PermissionStatus{"status": status}, "Permission status retrieved")
}

// ReleaseToken handles removing a single delivery token, typically on
// sign-out.
func (h *TokenHandler) ReleaseToken(c echo.Context) error {
	var req ReleaseTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid release input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.tokens.ReleaseToken(c.Request().Context(), req.Token); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Token released")
}

// ReleaseAllTokens handles removing every token of the identity.
func (h *TokenHandler) ReleaseAllTokens(c echo.Context) error {
	userID := middleware.UserID(c)

	removed, err := h.tokens.ReleaseAllForUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed}, "Tokens released")
}

// handleAppError maps enablement failures to the response envelope.
func (h *TokenHandler) handleAppError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrIdentityRequired):
		return response.Unauthorized(c, domainerrors.ErrIdentityRequired.ErrorCode(), domainerrors.ErrIdentityRequired.Message())
	case errors.Is(err, usecase.ErrPermissionDenied):
		return response.Forbidden(c, domainerrors.ErrPermissionDenied.ErrorCode(), domainerrors.ErrPermissionDenied.Message())
	}

	var acquisitionErr *usecase.AcquisitionError
	if errors.As(err, &acquisitionErr) {
		h.logger.Error("token acquisition failed", slog.Any("error", acquisitionErr))

		return response.Error(c,
			domainerrors.ErrTokenAcquisitionFailed.HTTPCode(),
			domainerrors.ErrTokenAcquisitionFailed.ErrorCode(),
			domainerrors.ErrTokenAcquisitionFailed.Message(),
			acquisitionErr.Error(),
		)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
