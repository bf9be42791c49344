package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/atlas/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sqlite.LazyDB {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "atlas.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	return lazy
}

func sampleSnapshot() *entity.Snapshot {
	refreshed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return &entity.Snapshot{
		UserID:   "u-1",
		Username: "alice",
		Settings: entity.Settings{SearchEngine: "https://duckduckgo.com/?q="},
		Tabs: []entity.Tab{{
			ID:           3,
			Title:        "Go",
			URL:          "https://go.dev",
			History:      []string{"", "https://go.dev"},
			CurrentIndex: 1,
			Zoom:         1.1,
			LastRefresh:  refreshed,
		}},
		History:     []entity.HistoryEntry{{ID: 42, URL: "https://go.dev", Title: "Go", Timestamp: "09:30:00"}},
		Bookmarks:   []entity.Bookmark{{URL: "https://go.dev", Title: "Go"}},
		Shortcuts:   []entity.Shortcut{{ID: "s1", Title: "GitHub", URL: "https://github.com", IsCustom: true}},
		UpdatedAt:   refreshed,
		ActiveTabID: 3,
	}
}

func TestSnapshotRepository_SaveAndGet(t *testing.T) {
	ctx := testCtx()
	db, err := openTestDB(t).DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewSnapshotRepository(db)

	want := sampleSnapshot()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, want.Settings, got.Settings)
	assert.Equal(t, want.History, got.History)
	assert.Equal(t, want.Bookmarks, got.Bookmarks)
	assert.Equal(t, want.Shortcuts, got.Shortcuts)
	assert.Equal(t, entity.TabID(3), got.ActiveTabID)
	assert.True(t, got.UpdatedAt.Equal(want.UpdatedAt))

	require.Len(t, got.Tabs, 1)
	assert.Equal(t, want.Tabs[0].History, got.Tabs[0].History)
	assert.Equal(t, 1, got.Tabs[0].CurrentIndex)
	assert.InDelta(t, 1.1, got.Tabs[0].Zoom, 1e-9)
	assert.True(t, got.Tabs[0].LastRefresh.Equal(want.Tabs[0].LastRefresh))
}

func TestSnapshotRepository_GetMissingReturnsNil(t *testing.T) {
	ctx := testCtx()
	db, err := openTestDB(t).DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewSnapshotRepository(db)

	got, err := repo.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotRepository_SaveReplaces(t *testing.T) {
	ctx := testCtx()
	db, err := openTestDB(t).DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewSnapshotRepository(db)

	first := sampleSnapshot()
	require.NoError(t, repo.Save(ctx, first))

	second := sampleSnapshot()
	second.Bookmarks = nil
	second.Username = "alice2"
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice2", got.Username)
	assert.Empty(t, got.Bookmarks)
}

func TestSnapshotRepository_AnonymousKey(t *testing.T) {
	ctx := testCtx()
	db, err := openTestDB(t).DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewSnapshotRepository(db)

	anon := &entity.Snapshot{Tabs: []entity.Tab{entity.NewTab(1)}}
	require.NoError(t, repo.Save(ctx, anon))

	got, err := repo.Get(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Anonymous())
	assert.False(t, got.UpdatedAt.IsZero(), "save stamps a missing UpdatedAt")
	require.Len(t, got.Tabs, 1)

	other, err := repo.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	ctx := testCtx()
	db, err := openTestDB(t).DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewSnapshotRepository(db)

	require.NoError(t, repo.Save(ctx, sampleSnapshot()))
	require.NoError(t, repo.Delete(ctx, "u-1"))

	got, err := repo.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting twice is not an error.
	require.NoError(t, repo.Delete(ctx, "u-1"))
}

func TestSnapshotRepository_SaveNil(t *testing.T) {
	ctx := testCtx()
	db, err := openTestDB(t).DB(ctx)
	require.NoError(t, err)

	assert.Error(t, sqlite.NewSnapshotRepository(db).Save(ctx, nil))
}

func TestSnapshotRepository_CurrentUser(t *testing.T) {
	ctx := testCtx()
	db, err := openTestDB(t).DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewSnapshotRepository(db)

	current, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, current, "fresh cache has no signed-in user")

	require.NoError(t, repo.SetCurrentUser(ctx, "u-1"))
	current, err = repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", current)

	require.NoError(t, repo.SetCurrentUser(ctx, ""))
	current, err = repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestSnapshotRepository_SurvivesReopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "atlas.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	repo := sqlite.NewSnapshotRepository(db)
	require.NoError(t, repo.Save(ctx, sampleSnapshot()))
	require.NoError(t, repo.SetCurrentUser(ctx, "u-1"))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo = sqlite.NewSnapshotRepository(db)

	current, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", current)

	got, err := repo.Get(ctx, current)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNewConnection_InMemory(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSnapshotRepository(db)
	require.NoError(t, repo.Save(ctx, sampleSnapshot()))

	got, err := repo.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}

func TestLazySnapshotRepository_OpensOnFirstCall(t *testing.T) {
	ctx := testCtx()
	lazy := openTestDB(t)
	repo := sqlite.NewLazySnapshotRepository(lazy)

	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.SetCurrentUser(ctx, "u-1"))
	assert.True(t, lazy.IsInitialized())

	current, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", current)
}

func TestLazySnapshotRepository_PropagatesOpenError(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLazySnapshotRepository(sqlite.NewLazyDB(""))

	_, err := repo.Get(ctx, "u-1")
	require.Error(t, err)
	assert.Error(t, repo.Save(ctx, sampleSnapshot()))
}
