package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"fivestar/config"
	deliverycontext "fivestar/internal/delivery/context"
	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/repository"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Welcome placeholder content, synthesized once per identity per device.
const (
	placeholderType  = "info"
	placeholderTitle = "Welcome to 5Star Notifications"
	placeholderBody  = "Match updates, articles, and announcements will show up here."
)

// Defaults applied when the inbox section is absent from config.
const (
	defaultPersonalLimit       = 100
	defaultBroadcastLimit      = 20
	defaultPlaceholderBackdate = 5 * time.Minute
)

// inboxService reconciles the three notification sources into day buckets.
type inboxService struct {
	notifyRepo          repository.NotificationRepository
	broadcastRepo       repository.BroadcastRepository
	localState          repository.LocalStateRepository
	personalLimit       int
	broadcastLimit      int
	placeholderBackdate time.Duration
	now                 func() time.Time
	logger              *slog.Logger
}

// InboxServiceParams holds dependencies for InboxService, injected by Fx.
type InboxServiceParams struct {
	fx.In

	NotifyRepo    repository.NotificationRepository
	BroadcastRepo repository.BroadcastRepository
	LocalState    repository.LocalStateRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewInboxService is the constructor for inboxService.
func NewInboxService(params InboxServiceParams) usecase.InboxUsecase {
	personalLimit := defaultPersonalLimit
	broadcastLimit := defaultBroadcastLimit
	placeholderBackdate := defaultPlaceholderBackdate
	if params.Config != nil && params.Config.Inbox != nil {
		if params.Config.Inbox.PersonalLimit > 0 {
			personalLimit = params.Config.Inbox.PersonalLimit
		}
		if params.Config.Inbox.BroadcastLimit > 0 {
			broadcastLimit = params.Config.Inbox.BroadcastLimit
		}
		if params.Config.Inbox.PlaceholderBackdate > 0 {
			placeholderBackdate = params.Config.Inbox.PlaceholderBackdate
		}
	}

	return &inboxService{
		notifyRepo:          params.NotifyRepo,
		broadcastRepo:       params.BroadcastRepo,
		localState:          params.LocalState,
		personalLimit:       personalLimit,
		broadcastLimit:      broadcastLimit,
		placeholderBackdate: placeholderBackdate,
		now:                 time.Now,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inboxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildInbox reconciles personal notifications, active broadcasts, and the
// welcome placeholder into Today / Yesterday / Earlier buckets.
func (srv *inboxService) BuildInbox(ctx context.Context, userID uuid.UUID) (*entity.Inbox, error) {
	// Merge order matters: within equal timestamps the stable sort keeps
	// personal before broadcast before placeholder.
	entries := srv.collectPersonal(ctx, userID)
	entries = append(entries, srv.collectBroadcasts(ctx)...)

	if placeholder := srv.collectPlaceholder(ctx, userID); placeholder != nil {
		entries = append(entries, *placeholder)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	inbox := &entity.Inbox{
		Today:     []entity.InboxEntry{},
		Yesterday: []entity.InboxEntry{},
		Earlier:   []entity.InboxEntry{},
	}

	now := srv.now()
	for _, entry := range entries {
		switch bucketFor(entry.CreatedAt, now) {
		case entity.BucketToday:
			inbox.Today = append(inbox.Today, entry)
		case entity.BucketYesterday:
			inbox.Yesterday = append(inbox.Yesterday, entry)
		default:
			inbox.Earlier = append(inbox.Earlier, entry)
		}
	}

	return inbox, nil
}

// collectPersonal loads the identity's personal notifications. Guests have
// none; a failing read degrades to an empty source.
func (srv *inboxService) collectPersonal(ctx context.Context, userID uuid.UUID) []entity.InboxEntry {
	if userID == uuid.Nil {
		return nil
	}

	notifications, err := srv.notifyRepo.FindNotificationsByUser(ctx, userID, srv.personalLimit)
	if err != nil {
		srv.log(ctx).Warn("personal notifications unavailable, degrading to empty",
			slog.String("error", err.Error()),
		)

		return nil
	}

	entries := make([]entity.InboxEntry, 0, len(notifications))
	for _, n := range notifications {
		entries = append(entries, entity.InboxEntry{
			ID:        n.ID.String(),
			Kind:      entity.SourcePersonal,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			Icon:      n.Icon,
			Data:      n.Data,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}

	return entries
}

// collectBroadcasts loads active broadcasts minus the device-local dismiss
// set. Either read failing degrades rather than erroring.
func (srv *inboxService) collectBroadcasts(ctx context.Context) []entity.InboxEntry {
	broadcasts, err := srv.broadcastRepo.FindActiveBroadcasts(ctx, srv.broadcastLimit)
	if err != nil {
		srv.log(ctx).Warn("broadcasts unavailable, degrading to empty",
			slog.String("error", err.Error()),
		)

		return nil
	}

	dismissed, err := srv.localState.DismissedBroadcasts(ctx)
	if err != nil {
		srv.log(ctx).Warn("dismiss set unavailable, treating as empty",
			slog.String("error", err.Error()),
		)
		dismissed = nil
	}

	entries := make([]entity.InboxEntry, 0, len(broadcasts))
	for _, b := range broadcasts {
		if _, hidden := dismissed[b.ID]; hidden {
			continue
		}
		entries = append(entries, entity.InboxEntry{
			ID:        b.ID.String(),
			Kind:      entity.SourceBroadcast,
			Type:      b.Type,
			Title:     b.Title,
			Body:      b.Body,
			Priority:  b.Priority,
			CreatedAt: b.CreatedAt,
		})
	}

	return entries
}

// collectPlaceholder synthesizes the welcome entry unless the identity has
// acknowledged it on this device. The entry is backdated so fresh real
// notifications sort above it.
func (srv *inboxService) collectPlaceholder(ctx context.Context, userID uuid.UUID) *entity.InboxEntry {
	acked, err := srv.localState.PlaceholderAcknowledged(ctx, repository.IdentityKey(userID))
	if err != nil {
		srv.log(ctx).Warn("placeholder flag unavailable, treating as unacknowledged",
			slog.String("error", err.Error()),
		)
	}
	if acked {
		return nil
	}

	return &entity.InboxEntry{
		ID:        entity.PlaceholderID,
		Kind:      entity.SourcePlaceholder,
		Type:      placeholderType,
		Title:     placeholderTitle,
		Body:      placeholderBody,
		Icon:      entity.DefaultNotificationIcon,
		CreatedAt: srv.now().Add(-srv.placeholderBackdate),
	}
}

// AcknowledgePlaceholder marks the welcome placeholder as seen. Idempotent.
func (srv *inboxService) AcknowledgePlaceholder(ctx context.Context, userID uuid.UUID) error {
	if err := srv.localState.AcknowledgePlaceholder(ctx, repository.IdentityKey(userID)); err != nil {
		return fmt.Errorf("failed to acknowledge placeholder: %w", err)
	}

	return nil
}

// UnreadCount returns the number of unread personal notifications.
func (srv *inboxService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, nil
	}

	count, err := srv.notifyRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	if count < 0 {
		count = 0
	}

	return count, nil
}

// bucketFor partitions a timestamp by calendar day relative to now, using
// date components in local time rather than a rolling 24h window.
func bucketFor(ts, now time.Time) entity.Bucket {
	y, m, d := ts.Local().Date()
	ny, nm, nd := now.Local().Date()
	if y == ny && m == nm && d == nd {
		return entity.BucketToday
	}

	yy, ym, yd := now.Local().AddDate(0, 0, -1).Date()
	if y == yy && m == ym && d == yd {
		return entity.BucketYesterday
	}

	return entity.BucketEarlier
}
