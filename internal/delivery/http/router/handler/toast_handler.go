package handler

import (
	"net/http"

	"fivestar/internal/delivery/http/response"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ToastHandler exposes the in-memory toast queue.
type ToastHandler struct {
	toasts usecase.ToastUsecase
}

// NewToastHandler is the constructor for ToastHandler.
func NewToastHandler(toasts usecase.ToastUsecase) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

// GetActiveToasts handles listing the live toasts in insertion order.
func (h *ToastHandler) GetActiveToasts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.toasts.Active(), "Active toasts retrieved")
}

// DismissToast handles removing a toast before its TTL expires. Unknown ids
// are a no-op; dismissal is idempotent.
func (h *ToastHandler) DismissToast(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid toast id")
	}

	h.toasts.Remove(id)

	return response.Success(c, http.StatusOK, nil, "Toast dismissed")
}
