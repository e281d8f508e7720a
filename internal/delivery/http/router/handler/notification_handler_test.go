package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fivestar/internal/domain/repository"
	mockRepo "fivestar/internal/mocks/repository"
	"fivestar/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNotificationHandler_GetInbox_Guest(t *testing.T) {
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	localState := mockRepo.NewMockLocalStateRepository(t)

	broadcastRepo.EXPECT().
		FindActiveBroadcasts(mock.Anything, mock.AnythingOfType("int")).
		Return(nil, nil)
	localState.EXPECT().
		DismissedBroadcasts(mock.Anything).
		Return(nil, nil)
	localState.EXPECT().
		PlaceholderAcknowledged(mock.Anything, repository.GuestIdentityKey).
		Return(false, nil)

	inbox := impl.NewInboxService(impl.InboxServiceParams{
		NotifyRepo:    notifyRepo,
		BroadcastRepo: broadcastRepo,
		LocalState:    localState,
		Logger:        slog.Default(),
	})
	handler := NewNotificationHandler(inbox, nil, slog.Default())

	c, rec := newNotificationTestContext(t, http.MethodGet, "/notifications")
	c.Set("userID", uuid.Nil)

	require.NoError(t, handler.GetInbox(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// A guest inbox still carries the welcome placeholder.
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "Welcome to 5Star Notifications")
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	localState := mockRepo.NewMockLocalStateRepository(t)

	notificationID := uuid.New()
	notifyRepo.EXPECT().
		MarkRead(mock.Anything, notificationID, mock.AnythingOfType("time.Time")).
		Return(true, nil)

	readState := impl.NewReadStateService(impl.ReadStateServiceParams{
		TxManager:  txManager,
		NotifyRepo: notifyRepo,
		LocalState: localState,
		Logger:     slog.Default(),
	})
	handler := NewNotificationHandler(nil, readState, slog.Default())

	c, rec := newNotificationTestContext(t, http.MethodPost, "/notifications/"+notificationID.String()+"/read")
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())
	c.Set("userID", uuid.New())

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transitioned":true`)
}

func TestNotificationHandler_MarkRead_InvalidID(t *testing.T) {
	handler := NewNotificationHandler(nil, nil, slog.Default())

	c, rec := newNotificationTestContext(t, http.MethodPost, "/notifications/not-a-uuid/read")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestNotificationHandler_DismissBroadcast(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	localState := mockRepo.NewMockLocalStateRepository(t)

	broadcastID := uuid.New()
	localState.EXPECT().
		AddDismissedBroadcast(mock.Anything, broadcastID).
		Return(nil)

	readState := impl.NewReadStateService(impl.ReadStateServiceParams{
		TxManager:  txManager,
		NotifyRepo: notifyRepo,
		LocalState: localState,
		Logger:     slog.Default(),
	})
	handler := NewNotificationHandler(nil, readState, slog.Default())

	c, rec := newNotificationTestContext(t, http.MethodPost, "/broadcasts/"+broadcastID.String()+"/dismiss")
	c.SetParamNames("id")
	c.SetParamValues(broadcastID.String())

	require.NoError(t, handler.DismissBroadcast(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_GetUnreadCount(t *testing.T) {
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	localState := mockRepo.NewMockLocalStateRepository(t)

	userID := uuid.New()
	notifyRepo.EXPECT().CountUnread(mock.Anything, userID).Return(int64(7), nil)

	inbox := impl.NewInboxService(impl.InboxServiceParams{
		NotifyRepo:    notifyRepo,
		BroadcastRepo: broadcastRepo,
		LocalState:    localState,
		Logger:        slog.Default(),
	})
	handler := NewNotificationHandler(inbox, nil, slog.Default())

	c, rec := newNotificationTestContext(t, http.MethodGet, "/notifications/unread-count")
	c.Set("userID", userID)

	require.NoError(t, handler.GetUnreadCount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unread":7`)
}
