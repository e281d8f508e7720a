package impl

import (
	"context"
	"testing"
	"time"

	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/repository"
	mockRepo "fivestar/internal/mocks/repository"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
)

type readStateServiceFixtures struct {
	service    usecase.ReadStateUsecase
	txManager  *mockRepo.MockTransactionManager
	notifyRepo *mockRepo.MockNotificationRepository
	localState *mockRepo.MockLocalStateRepository
}

func createTestReadStateService(t *testing.T, now time.Time) readStateServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	localState := mockRepo.NewMockLocalStateRepository(t)

	svc := NewReadStateService(ReadStateServiceParams{
		TxManager:  txManager,
		NotifyRepo: notifyRepo,
		LocalState: localState,
		Logger:     slog.Default(),
	})
	svc.(*readStateService).now = func() time.Time { return now }

	return readStateServiceFixtures{
		service:    svc,
		txManager:  txManager,
		notifyRepo: notifyRepo,
		localState: localState,
	}
}

// runTransaction makes the transaction mock execute its callback against the
// given factory, mimicking a committed transaction.
func (fx readStateServiceFixtures) runTransaction(ctx context.Context, factory repository.RepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestReadStateService_MarkRead(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	id := uuid.New()

	fx.notifyRepo.EXPECT().MarkRead(ctx, id, now).Return(true, nil)

	transitioned, err := fx.service.MarkRead(ctx, id)
	require.NoError(t, err)
	assert.True(t, transitioned)
}

func TestReadStateService_MarkRead_AlreadyRead(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	id := uuid.New()

	fx.notifyRepo.EXPECT().MarkRead(ctx, id, now).Return(false, nil)

	transitioned, err := fx.service.MarkRead(ctx, id)
	require.NoError(t, err)
	assert.False(t, transitioned)
}

func TestReadStateService_MarkRead_RepoFailure(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	id := uuid.New()

	fx.notifyRepo.EXPECT().
		MarkRead(ctx, id, now).
		Return(false, errors.New("remote store unavailable"))

	transitioned, err := fx.service.MarkRead(ctx, id)
	assert.ErrorContains(t, err, "failed to mark notification read")
	assert.False(t, transitioned)
}

func TestReadStateService_MarkAllRead(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	unread := []*entity.PersonalNotification{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	txNotifyRepo := mockRepo.NewMockNotificationRepository(t)
	txNotifyRepo.EXPECT().FindUnreadByUser(ctx, userID).Return(unread, nil)
	txNotifyRepo.EXPECT().
		MarkManyRead(ctx, []uuid.UUID{unread[0].ID, unread[1].ID, unread[2].ID}, now).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewNotificationRepository().Return(txNotifyRepo)
	fx.runTransaction(ctx, factory)

	marked, err := fx.service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)
}

func TestReadStateService_MarkAllRead_NothingUnread(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	txNotifyRepo := mockRepo.NewMockNotificationRepository(t)
	txNotifyRepo.EXPECT().FindUnreadByUser(ctx, userID).Return(nil, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewNotificationRepository().Return(txNotifyRepo)
	fx.runTransaction(ctx, factory)

	marked, err := fx.service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, marked)
}

func TestReadStateService_MarkAllRead_IdentityRequired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)

	marked, err := fx.service.MarkAllRead(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, usecase.ErrIdentityRequired)
	assert.Zero(t, marked)
}

func TestReadStateService_MarkAllRead_WriteFailureRollsBack(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	unread := []*entity.PersonalNotification{{ID: uuid.New(), UserID: userID}}

	txNotifyRepo := mockRepo.NewMockNotificationRepository(t)
	txNotifyRepo.EXPECT().FindUnreadByUser(ctx, userID).Return(unread, nil)
	txNotifyRepo.EXPECT().
		MarkManyRead(ctx, []uuid.UUID{unread[0].ID}, now).
		Return(errors.New("deadlock detected"))

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewNotificationRepository().Return(txNotifyRepo)
	fx.runTransaction(ctx, factory)

	marked, err := fx.service.MarkAllRead(ctx, userID)
	assert.ErrorContains(t, err, "failed to mark notifications read")
	assert.Zero(t, marked)
}

func TestReadStateService_DismissBroadcast(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	id := uuid.New()

	fx.localState.EXPECT().AddDismissedBroadcast(ctx, id).Return(nil)

	require.NoError(t, fx.service.DismissBroadcast(ctx, id))
}

func TestReadStateService_DismissBroadcast_LocalStoreFailure(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	id := uuid.New()

	fx.localState.EXPECT().
		AddDismissedBroadcast(ctx, id).
		Return(errors.New("disk full"))

	err := fx.service.DismissBroadcast(ctx, id)
	assert.ErrorContains(t, err, "failed to dismiss broadcast")
}

func TestReadStateService_DeleteNotification(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	id := uuid.New()

	fx.notifyRepo.EXPECT().DeleteNotification(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteNotification(ctx, id))
}

func TestReadStateService_DeleteAllForUser(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	fx.notifyRepo.EXPECT().DeleteNotificationsByUser(ctx, userID).Return(int64(5), nil)

	removed, err := fx.service.DeleteAllForUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)
}

func TestReadStateService_DeleteAllForUser_IdentityRequired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestReadStateService(t, now)

	removed, err := fx.service.DeleteAllForUser(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, usecase.ErrIdentityRequired)
	assert.Zero(t, removed)
}
