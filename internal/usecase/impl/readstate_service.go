package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "fivestar/internal/delivery/context"
	"fivestar/internal/domain/repository"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// readStateService tracks read state across the three notification sources.
type readStateService struct {
	txManager  repository.TransactionManager
	notifyRepo repository.NotificationRepository
	localState repository.LocalStateRepository
	now        func() time.Time
	logger     *slog.Logger
}

// ReadStateServiceParams holds dependencies for ReadStateService, injected by Fx.
type ReadStateServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	NotifyRepo repository.NotificationRepository
	LocalState repository.LocalStateRepository
	Logger     *slog.Logger
}

// NewReadStateService is the constructor for readStateService.
func NewReadStateService(params ReadStateServiceParams) usecase.ReadStateUsecase {
	return &readStateService{
		txManager:  params.TxManager,
		notifyRepo: params.NotifyRepo,
		localState: params.LocalState,
		now:        time.Now,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *readStateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MarkRead marks a single personal notification read. Monotonic: an
// already-read row keeps its original read timestamp.
func (srv *readStateService) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	transitioned, err := srv.notifyRepo.MarkRead(ctx, id, srv.now())
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return transitioned, nil
}

// MarkAllRead marks every unread personal notification of the identity read
// inside one transaction: either all rows transition or none do.
func (srv *readStateService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, usecase.ErrIdentityRequired
	}

	var marked int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notifyRepo := repoFactory.NewNotificationRepository()

		unread, err := notifyRepo.FindUnreadByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to find unread notifications: %w", err)
		}
		if len(unread) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(unread))
		for _, n := range unread {
			ids = append(ids, n.ID)
		}

		if err := notifyRepo.MarkManyRead(ctx, ids, srv.now()); err != nil {
			return fmt.Errorf("failed to mark notifications read: %w", err)
		}

		marked = int64(len(ids))

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("marked all notifications read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", marked),
	)

	return marked, nil
}

// DismissBroadcast hides a broadcast on this device.
func (srv *readStateService) DismissBroadcast(ctx context.Context, id uuid.UUID) error {
	if err := srv.localState.AddDismissedBroadcast(ctx, id); err != nil {
		return fmt.Errorf("failed to dismiss broadcast: %w", err)
	}

	return nil
}

// DeleteNotification removes a personal notification entirely.
func (srv *readStateService) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	if err := srv.notifyRepo.DeleteNotification(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// DeleteAllForUser removes every personal notification of the identity.
func (srv *readStateService) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, usecase.ErrIdentityRequired
	}

	removed, err := srv.notifyRepo.DeleteNotificationsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications for user: %w", err)
	}

	return removed, nil
}
