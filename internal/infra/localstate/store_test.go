package localstate

import (
	"context"
	"testing"

	"fivestar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestDismissedBroadcasts_EmptyByDefault(t *testing.T) {
	store := newTestStore(t)

	dismissed, err := store.DismissedBroadcasts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dismissed)
}

func TestAddDismissedBroadcast_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.AddDismissedBroadcast(ctx, id))
	require.NoError(t, store.AddDismissedBroadcast(ctx, id))

	dismissed, err := store.DismissedBroadcasts(ctx)
	require.NoError(t, err)
	assert.Len(t, dismissed, 1)
	assert.Contains(t, dismissed, id)
}

func TestDismissSetOnlyGrows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()

	require.NoError(t, store.AddDismissedBroadcast(ctx, first))
	require.NoError(t, store.AddDismissedBroadcast(ctx, second))

	dismissed, err := store.DismissedBroadcasts(ctx)
	require.NoError(t, err)
	assert.Len(t, dismissed, 2)
	assert.Contains(t, dismissed, first)
	assert.Contains(t, dismissed, second)
}

func TestPlaceholderFlag_PerIdentity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userKey := uuid.New().String()

	acked, err := store.PlaceholderAcknowledged(ctx, userKey)
	require.NoError(t, err)
	assert.False(t, acked)

	require.NoError(t, store.AcknowledgePlaceholder(ctx, userKey))
	// Acknowledging twice has the effect of acknowledging once.
	require.NoError(t, store.AcknowledgePlaceholder(ctx, userKey))

	acked, err = store.PlaceholderAcknowledged(ctx, userKey)
	require.NoError(t, err)
	assert.True(t, acked)

	// The guest identity keeps its own flag.
	acked, err = store.PlaceholderAcknowledged(ctx, repository.GuestIdentityKey)
	require.NoError(t, err)
	assert.False(t, acked)
}
