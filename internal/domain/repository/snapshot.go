package repository

import (
	"context"

	"github.com/bnema/atlas/internal/domain/entity"
)

// SnapshotRepository is the host's local key-value cache of user state.
// It lets a session survive process restarts while the remote store is unreachable.
type SnapshotRepository interface {
	// Save creates or replaces the snapshot stored under snap.UserID.
	Save(ctx context.Context, snap *entity.Snapshot) error

	// Get retrieves the snapshot for a user id ("" is the anonymous session).
	// Returns nil if nothing is cached.
	Get(ctx context.Context, userID string) (*entity.Snapshot, error)

	// Delete removes the snapshot for a user id.
	Delete(ctx context.Context, userID string) error

	// SetCurrentUser remembers which user was signed in last ("" after logout).
	SetCurrentUser(ctx context.Context, userID string) error

	// CurrentUser returns the last signed-in user id, or "" if none.
	CurrentUser(ctx context.Context) (string, error)
}
