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
	"github.com/stretchr/testify/require"
	"log/slog"
)

type inboxServiceFixtures struct {
	service       usecase.InboxUsecase
	notifyRepo    *mockRepo.MockNotificationRepository
	broadcastRepo *mockRepo.MockBroadcastRepository
	localState    *mockRepo.MockLocalStateRepository
}

// createTestInboxService pins "now" so day-boundary assertions stay
// deterministic.
func createTestInboxService(t *testing.T, now time.Time) inboxServiceFixtures {
	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	localState := mockRepo.NewMockLocalStateRepository(t)

	svc := NewInboxService(InboxServiceParams{
		NotifyRepo:    notifyRepo,
		BroadcastRepo: broadcastRepo,
		LocalState:    localState,
		Logger:        slog.Default(),
	})
	svc.(*inboxService).now = func() time.Time { return now }

	return inboxServiceFixtures{
		service:       svc,
		notifyRepo:    notifyRepo,
		broadcastRepo: broadcastRepo,
		localState:    localState,
	}
}

func personalAt(title string, createdAt time.Time) *entity.PersonalNotification {
	return &entity.PersonalNotification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      "article",
		Title:     title,
		Body:      "body of " + title,
		CreatedAt: createdAt,
	}
}

func broadcastAt(title string, createdAt time.Time) *entity.BroadcastNotification {
	return &entity.BroadcastNotification{
		ID:        uuid.New(),
		Title:     title,
		Body:      "body of " + title,
		Type:      "announcement",
		Priority:  "normal",
		Active:    true,
		CreatedAt: createdAt,
	}
}

// flatten collapses the bucketed inbox back into newest-first order.
func flatten(inbox *entity.Inbox) []entity.InboxEntry {
	entries := make([]entity.InboxEntry, 0, inbox.Len())
	entries = append(entries, inbox.Today...)
	entries = append(entries, inbox.Yesterday...)
	entries = append(entries, inbox.Earlier...)

	return entries
}

func TestInboxService_BuildInbox_MergesSourcesNewestFirst(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	p1 := personalAt("personal at 10:00", now.Add(-2*time.Hour))
	p2 := personalAt("personal at 09:00", now.Add(-3*time.Hour))
	b1 := broadcastAt("broadcast at 09:30", now.Add(-150*time.Minute))

	fx.notifyRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultPersonalLimit).
		Return([]*entity.PersonalNotification{p1, p2}, nil)
	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return([]*entity.BroadcastNotification{b1}, nil)
	fx.localState.EXPECT().
		DismissedBroadcasts(ctx).
		Return(map[uuid.UUID]struct{}{}, nil)
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, userID.String()).
		Return(true, nil)

	inbox, err := fx.service.BuildInbox(ctx, userID)
	require.NoError(t, err)

	entries := flatten(inbox)
	require.Len(t, entries, 3)
	assert.Equal(t, "personal at 10:00", entries[0].Title)
	assert.Equal(t, "broadcast at 09:30", entries[1].Title)
	assert.Equal(t, "personal at 09:00", entries[2].Title)
	assert.Equal(t, entity.SourcePersonal, entries[0].Kind)
	assert.Equal(t, entity.SourceBroadcast, entries[1].Kind)
}

func TestInboxService_BuildInbox_CalendarDayBuckets(t *testing.T) {
	// 00:30 local: a notification from 31 minutes ago already belongs to
	// yesterday even though it is minutes old.
	now := time.Date(2025, 3, 10, 0, 30, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	justAfterMidnight := personalAt("today", time.Date(2025, 3, 10, 0, 1, 0, 0, time.Local))
	lateLastNight := personalAt("yesterday late", time.Date(2025, 3, 9, 23, 59, 0, 0, time.Local))
	yesterdayMorning := personalAt("yesterday morning", time.Date(2025, 3, 9, 8, 0, 0, 0, time.Local))
	twoDaysAgo := personalAt("earlier", time.Date(2025, 3, 8, 23, 59, 0, 0, time.Local))

	fx.notifyRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultPersonalLimit).
		Return([]*entity.PersonalNotification{justAfterMidnight, lateLastNight, yesterdayMorning, twoDaysAgo}, nil)
	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return(nil, nil)
	fx.localState.EXPECT().
		DismissedBroadcasts(ctx).
		Return(nil, nil)
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, userID.String()).
		Return(true, nil)

	inbox, err := fx.service.BuildInbox(ctx, userID)
	require.NoError(t, err)

	require.Len(t, inbox.Today, 1)
	assert.Equal(t, "today", inbox.Today[0].Title)

	require.Len(t, inbox.Yesterday, 2)
	assert.Equal(t, "yesterday late", inbox.Yesterday[0].Title)
	assert.Equal(t, "yesterday morning", inbox.Yesterday[1].Title)

	require.Len(t, inbox.Earlier, 1)
	assert.Equal(t, "earlier", inbox.Earlier[0].Title)
}

func TestInboxService_BuildInbox_FiltersDismissedBroadcasts(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	kept := broadcastAt("kept", now.Add(-time.Hour))
	hidden := broadcastAt("hidden", now.Add(-2*time.Hour))

	fx.notifyRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultPersonalLimit).
		Return(nil, nil)
	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return([]*entity.BroadcastNotification{kept, hidden}, nil)
	fx.localState.EXPECT().
		DismissedBroadcasts(ctx).
		Return(map[uuid.UUID]struct{}{hidden.ID: {}}, nil)
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, userID.String()).
		Return(true, nil)

	inbox, err := fx.service.BuildInbox(ctx, userID)
	require.NoError(t, err)

	entries := flatten(inbox)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Title)
}

func TestInboxService_BuildInbox_PlaceholderSortsBelowFreshEntries(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	fresh := personalAt("fresh", now.Add(-time.Minute))

	fx.notifyRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultPersonalLimit).
		Return([]*entity.PersonalNotification{fresh}, nil)
	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return(nil, nil)
	fx.localState.EXPECT().
		DismissedBroadcasts(ctx).
		Return(nil, nil)
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, userID.String()).
		Return(false, nil)

	inbox, err := fx.service.BuildInbox(ctx, userID)
	require.NoError(t, err)

	require.Len(t, inbox.Today, 2)
	assert.Equal(t, "fresh", inbox.Today[0].Title)
	assert.Equal(t, entity.PlaceholderID, inbox.Today[1].ID)
	assert.Equal(t, entity.SourcePlaceholder, inbox.Today[1].Kind)
	assert.Equal(t, now.Add(-defaultPlaceholderBackdate), inbox.Today[1].CreatedAt)
}

func TestInboxService_BuildInbox_GuestSeesBroadcastsAndPlaceholder(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()

	b := broadcastAt("open announcement", now.Add(-time.Hour))

	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return([]*entity.BroadcastNotification{b}, nil)
	fx.localState.EXPECT().
		DismissedBroadcasts(ctx).
		Return(nil, nil)
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, repository.GuestIdentityKey).
		Return(false, nil)

	inbox, err := fx.service.BuildInbox(ctx, uuid.Nil)
	require.NoError(t, err)

	entries := flatten(inbox)
	require.Len(t, entries, 2)
	assert.Equal(t, "open announcement", entries[0].Title)
	assert.Equal(t, entity.PlaceholderID, entries[1].ID)
}

func TestInboxService_BuildInbox_DegradesWhenSourcesFail(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	fx.notifyRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultPersonalLimit).
		Return(nil, errors.New("remote store unavailable"))
	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return(nil, errors.New("remote store unavailable"))
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, userID.String()).
		Return(false, errors.New("local store corrupt"))

	inbox, err := fx.service.BuildInbox(ctx, userID)
	require.NoError(t, err)

	// Failed sources degrade to empty; the placeholder flag failing reads as
	// unacknowledged, so the welcome entry still shows.
	entries := flatten(inbox)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.PlaceholderID, entries[0].ID)
}

func TestInboxService_BuildInbox_DismissSetFailureShowsAllBroadcasts(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	b := broadcastAt("announcement", now.Add(-time.Hour))

	fx.notifyRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultPersonalLimit).
		Return(nil, nil)
	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return([]*entity.BroadcastNotification{b}, nil)
	fx.localState.EXPECT().
		DismissedBroadcasts(ctx).
		Return(nil, errors.New("local store corrupt"))
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, userID.String()).
		Return(true, nil)

	inbox, err := fx.service.BuildInbox(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, inbox.Len())
}

func TestInboxService_BuildInbox_EmptyBucketsAreNonNil(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	fx.notifyRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultPersonalLimit).
		Return(nil, nil)
	fx.broadcastRepo.EXPECT().
		FindActiveBroadcasts(ctx, defaultBroadcastLimit).
		Return(nil, nil)
	fx.localState.EXPECT().
		DismissedBroadcasts(ctx).
		Return(nil, nil)
	fx.localState.EXPECT().
		PlaceholderAcknowledged(ctx, userID.String()).
		Return(true, nil)

	inbox, err := fx.service.BuildInbox(ctx, userID)
	require.NoError(t, err)

	assert.NotNil(t, inbox.Today)
	assert.NotNil(t, inbox.Yesterday)
	assert.NotNil(t, inbox.Earlier)
	assert.Zero(t, inbox.Len())
}

func TestInboxService_AcknowledgePlaceholder(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	fx.localState.EXPECT().
		AcknowledgePlaceholder(ctx, userID.String()).
		Return(nil)

	require.NoError(t, fx.service.AcknowledgePlaceholder(ctx, userID))
}

func TestInboxService_AcknowledgePlaceholder_GuestKey(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()

	fx.localState.EXPECT().
		AcknowledgePlaceholder(ctx, repository.GuestIdentityKey).
		Return(nil)

	require.NoError(t, fx.service.AcknowledgePlaceholder(ctx, uuid.Nil))
}

func TestInboxService_UnreadCount(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	fx.notifyRepo.EXPECT().CountUnread(ctx, userID).Return(int64(4), nil)

	count, err := fx.service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestInboxService_UnreadCount_GuestIsZero(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)

	count, err := fx.service.UnreadCount(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInboxService_UnreadCount_NegativeFloorsToZero(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	fx := createTestInboxService(t, now)
	ctx := context.Background()
	userID := uuid.New()

	fx.notifyRepo.EXPECT().CountUnread(ctx, userID).Return(int64(-1), nil)

	count, err := fx.service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
