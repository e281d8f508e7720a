// Package localstate implements the device-local state store on SQLite.
// It holds the broadcast dismiss set and the per-identity placeholder flag,
// the two pieces of read state that never sync to the remote store.
package localstate

import (
	"context"
	"log/slog"
	"time"

	"fivestar/config"
	"fivestar/internal/domain/lifecycle"
	"fivestar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

// Store implements repository.LocalStateRepository using a local SQLite
// database. Writes are idempotent (INSERT OR IGNORE), so concurrent callers
// racing on the same key converge on the same state.
type Store struct {
	db *sqlx.DB
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens (or creates) the local state database, enables WAL mode, and
// applies any pending schema migrations. Registered as an Fx provider; the
// connection closes on shutdown.
func New(params Params) (repository.LocalStateRepository, error) {
	path := ":memory:"
	if params.Config.LocalState != nil && params.Config.LocalState.Path != "" {
		path = params.Config.LocalState.Path
	}

	store, err := Open(path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := store.db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping local state store")
			}

			params.Logger.Info("local state store ready", slog.String("path", path))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens the database at path without lifecycle management. Tests use
// this directly with ":memory:".
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local state store")
	}

	// WAL keeps readers unblocked while a writer is active.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to enable WAL mode")
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()

		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DismissedBroadcasts returns the set of broadcast ids hidden on this device.
func (s *Store) DismissedBroadcasts(ctx context.Context) (map[uuid.UUID]struct{}, error) {
	var ids []string
	if err := s.db.SelectContext(ctx, &ids,
		"SELECT broadcast_id FROM dismissed_broadcasts",
	); err != nil {
		return nil, errors.Wrap(err, "failed to load dismissed broadcasts")
	}

	dismissed := make(map[uuid.UUID]struct{}, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			// A malformed row cannot match any live broadcast; skip it.
			continue
		}
		dismissed[id] = struct{}{}
	}

	return dismissed, nil
}

// AddDismissedBroadcast records a broadcast id as dismissed. Idempotent.
func (s *Store) AddDismissedBroadcast(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO dismissed_broadcasts (broadcast_id, dismissed_at) VALUES (?, ?)",
		id.String(), time.Now().UTC(),
	); err != nil {
		return errors.Wrap(err, "failed to record dismissed broadcast")
	}

	return nil
}

// PlaceholderAcknowledged reports whether the welcome placeholder has been
// acknowledged for the given identity key on this device.
func (s *Store) PlaceholderAcknowledged(ctx context.Context, identityKey string) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM placeholder_flags WHERE identity_key = ?",
		identityKey,
	); err != nil {
		return false, errors.Wrap(err, "failed to read placeholder flag")
	}

	return count > 0, nil
}

// AcknowledgePlaceholder marks the welcome placeholder as seen for the given
// identity key. Idempotent.
func (s *Store) AcknowledgePlaceholder(ctx context.Context, identityKey string) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO placeholder_flags (identity_key, acknowledged_at) VALUES (?, ?)",
		identityKey, time.Now().UTC(),
	); err != nil {
		return errors.Wrap(err, "failed to record placeholder acknowledgment")
	}

	return nil
}
