// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (HTTP, SQLite, rendering hosts).
package port

import (
	"context"

	"github.com/bnema/atlas/internal/domain/entity"
)

// RemoteStore is the per-user remote persistence service.
// Collection calls replace the whole stored collection; history calls are
// individual append/remove operations.
type RemoteStore interface {
	// FetchUser returns the hydrated snapshot for a user.
	FetchUser(ctx context.Context, userID string) (*entity.Snapshot, error)

	ReplaceSettings(ctx context.Context, userID string, settings entity.Settings) error
	ReplaceTabs(ctx context.Context, userID string, tabs []entity.Tab) error
	ReplaceBookmarks(ctx context.Context, userID string, bookmarks []entity.Bookmark) error
	ReplaceShortcuts(ctx context.Context, userID string, shortcuts []entity.Shortcut) error

	AppendHistory(ctx context.Context, userID string, entry entity.HistoryEntry) error
	ClearHistory(ctx context.Context, userID string) error
	DeleteHistory(ctx context.Context, userID string, entryID int64) error
}
