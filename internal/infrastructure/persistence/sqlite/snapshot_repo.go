package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/domain/repository"
	"github.com/bnema/atlas/internal/logging"
)

const (
	upsertSnapshotSQL = `
INSERT INTO snapshots (user_id, username, payload, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    username = excluded.username,
    payload = excluded.payload,
    updated_at = excluded.updated_at`
	getSnapshotSQL    = `SELECT payload FROM snapshots WHERE user_id = ?`
	deleteSnapshotSQL = `DELETE FROM snapshots WHERE user_id = ?`
	setIdentitySQL    = `INSERT INTO identity (id, user_id) VALUES (1, ?)
ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id`
	getIdentitySQL = `SELECT user_id FROM identity WHERE id = 1`
)

type snapshotRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewSnapshotRepository creates a new SQLite-backed snapshot cache.
func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepo{db: db, now: time.Now}
}

func (r *snapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	if snap == nil {
		return errors.New("snapshot cannot be nil")
	}
	log := logging.FromContext(ctx)

	updatedAt := snap.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}
	stored := *snap
	stored.UpdatedAt = updatedAt.UTC()

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, upsertSnapshotSQL,
		snap.UserID, snap.Username, string(payload), stored.UpdatedAt.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	log.Debug().
		Str("user_id", snap.UserID).
		Int("tabs", len(snap.Tabs)).
		Int("history", len(snap.History)).
		Int("bytes", len(payload)).
		Msg("snapshot cached")
	return nil
}

func (r *snapshotRepo) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, getSnapshotSQL, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap entity.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for %q: %w", userID, err)
	}
	// The row key is authoritative over whatever the payload carries.
	snap.UserID = userID
	return &snap, nil
}

func (r *snapshotRepo) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteSnapshotSQL, userID); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) SetCurrentUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, setIdentitySQL, userID); err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	return nil
}

func (r *snapshotRepo) CurrentUser(ctx context.Context) (string, error) {
	var userID string
	err := r.db.QueryRowContext(ctx, getIdentitySQL).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read current user: %w", err)
	}
	return userID, nil
}
