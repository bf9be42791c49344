package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atlas/internal/domain/entity"
)

func TestNextHistoryID_StrictlyIncreasing(t *testing.T) {
	now := time.Now()
	first := entity.NextHistoryID(now)
	second := entity.NextHistoryID(now)
	third := entity.NextHistoryID(now.Add(-time.Hour))

	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
}

func TestNewHistoryLog_ObservesHydratedIDs(t *testing.T) {
	future := time.Now().Add(24 * time.Hour).UnixMilli()
	entity.NewHistoryLog([]entity.HistoryEntry{{ID: future, URL: "https://a.com"}})

	assert.Greater(t, entity.NextHistoryID(time.Now()), future)
}

func TestHistoryLog_PatchTitleTargetsMostRecent(t *testing.T) {
	log := entity.NewHistoryLog(nil)
	now := time.Now()
	log.Prepend(entity.NewHistoryEntry("https://a.com", "old", now))
	log.Prepend(entity.NewHistoryEntry("https://b.com", "b", now))
	log.Prepend(entity.NewHistoryEntry("https://a.com", "a.com", now))

	require.True(t, log.PatchTitle("https://a.com", "Real Title"))

	entries := log.Entries()
	assert.Equal(t, "Real Title", entries[0].Title)
	assert.Equal(t, "old", entries[2].Title)
	assert.False(t, log.PatchTitle("https://missing.com", "x"))
}

func TestHistoryLog_DeleteAndClear(t *testing.T) {
	log := entity.NewHistoryLog(nil)
	e := entity.NewHistoryEntry("https://a.com", "a", time.Now())
	log.Prepend(e)
	log.Prepend(entity.NewHistoryEntry("https://b.com", "b", time.Now()))

	assert.True(t, log.Delete(e.ID))
	assert.False(t, log.Delete(e.ID))
	assert.Equal(t, 1, log.Len())

	log.Clear()
	assert.Equal(t, 0, log.Len())
}

func TestNewHistoryEntry_FormatsTimestamp(t *testing.T) {
	at := time.Date(2026, 3, 1, 14, 5, 9, 0, time.Local)
	e := entity.NewHistoryEntry("https://a.com", "a", at)

	assert.Equal(t, "14:05:09", e.Timestamp)
}
