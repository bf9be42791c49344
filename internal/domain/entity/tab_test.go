package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atlas/internal/domain/entity"
)

func assertCursorInvariant(t *testing.T, tab entity.Tab) {
	t.Helper()
	require.NotEmpty(t, tab.History)
	assert.GreaterOrEqual(t, tab.CurrentIndex, 0)
	assert.Less(t, tab.CurrentIndex, len(tab.History))
	assert.Equal(t, tab.History[tab.CurrentIndex], tab.URL)
}

func TestNewTab_StartsOnHome(t *testing.T) {
	tab := entity.NewTab(7)

	assert.Equal(t, entity.TabID(7), tab.ID)
	assert.Equal(t, []string{""}, tab.History)
	assert.Equal(t, entity.DefaultTabTitle, tab.Title)
	assert.Equal(t, entity.ZoomDefault, tab.Zoom)
	assertCursorInvariant(t, tab)
}

func TestTab_PushTruncatesForwardEntries(t *testing.T) {
	tab := entity.NewTab(1)
	tab.Push("https://a.com")
	tab.Push("https://b.com")
	require.True(t, tab.Back())

	tab.Push("https://c.com")

	assert.Equal(t, []string{"", "https://a.com", "https://c.com"}, tab.History)
	assert.Equal(t, 2, tab.CurrentIndex)
	assertCursorInvariant(t, tab)
}

func TestTab_BackForwardBounds(t *testing.T) {
	tab := entity.NewTab(1)
	assert.False(t, tab.Back())
	assert.False(t, tab.Forward())

	tab.Push("https://a.com")
	assert.True(t, tab.Back())
	assert.Equal(t, "", tab.URL)
	assert.True(t, tab.Forward())
	assert.Equal(t, "https://a.com", tab.URL)
	assert.False(t, tab.Forward())
	assertCursorInvariant(t, tab)
}

func TestTab_CloneDoesNotAliasHistory(t *testing.T) {
	tab := entity.NewTab(1)
	tab.Push("https://a.com")
	clone := tab.Clone()

	tab.ReplaceCurrent("https://changed.com")

	assert.Equal(t, "https://a.com", clone.History[1])
}

func TestTab_Sanitize(t *testing.T) {
	tests := []struct {
		name string
		in   entity.Tab
		want entity.Tab
	}{
		{
			name: "empty history gets current url",
			in:   entity.Tab{ID: 1, URL: "https://a.com", CurrentIndex: 4, Zoom: 1},
			want: entity.Tab{ID: 1, URL: "https://a.com", History: []string{"https://a.com"}, Zoom: 1},
		},
		{
			name: "cursor and zoom clamped",
			in:   entity.Tab{ID: 1, Title: "x", History: []string{"", "https://b.com"}, CurrentIndex: 9, Zoom: 12},
			want: entity.Tab{ID: 1, Title: "x", URL: "https://b.com", History: []string{"", "https://b.com"}, CurrentIndex: 1, Zoom: entity.ZoomMax},
		},
		{
			name: "missing zoom defaults and home title",
			in:   entity.Tab{ID: 1, History: []string{""}, CurrentIndex: -2},
			want: entity.Tab{ID: 1, Title: entity.DefaultTabTitle, History: []string{""}, Zoom: entity.ZoomDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := tt.in
			tab.Sanitize()
			assert.Equal(t, tt.want, tab)
		})
	}
}

func TestTabList_AddAssignsMaxPlusOne(t *testing.T) {
	tl := entity.NewTabListFrom([]entity.Tab{{ID: 4, History: []string{""}}, {ID: 2, History: []string{""}}})

	tab := tl.Add()

	assert.Equal(t, entity.TabID(5), tab.ID)
	assert.Equal(t, tab.ID, tl.ActiveID())
	assert.Equal(t, 3, tl.Count())
}

func TestTabList_RemoveOnlyTabIsNoop(t *testing.T) {
	tl := entity.NewTabList()

	assert.False(t, tl.Remove(1))
	assert.Equal(t, 1, tl.Count())
}

func TestTabList_RemoveActivatesPrecedingTab(t *testing.T) {
	tl := entity.NewTabList()
	tl.Add()          // 2
	third := tl.Add() // 3, active
	tl.Activate(2)

	require.True(t, tl.Remove(2))
	assert.Equal(t, entity.TabID(1), tl.ActiveID())

	tl.Activate(1)
	require.True(t, tl.Remove(1))
	assert.Equal(t, third.ID, tl.ActiveID())
}

func TestTabList_RemoveInactiveKeepsActive(t *testing.T) {
	tl := entity.NewTabList()
	tl.Add()
	active := tl.Add()

	require.True(t, tl.Remove(1))
	assert.Equal(t, active.ID, tl.ActiveID())
	assert.False(t, tl.Remove(99))
}

func TestTabList_IDsNeverReused(t *testing.T) {
	tl := entity.NewTabList()
	tl.Add() // 2
	tl.Add() // 3
	require.True(t, tl.Remove(2))

	tab := tl.Add()

	assert.Equal(t, entity.TabID(4), tab.ID)
}

func TestNewTabListFrom_RepairsDuplicateIDs(t *testing.T) {
	tl := entity.NewTabListFrom([]entity.Tab{{ID: 1}, {ID: 1}, {ID: 0}})

	ids := map[entity.TabID]bool{}
	for _, tab := range tl.Snapshot() {
		assert.False(t, ids[tab.ID], "duplicate id %d", tab.ID)
		ids[tab.ID] = true
		assertCursorInvariant(t, tab)
	}
	assert.Len(t, ids, 3)
	assert.Equal(t, entity.TabID(1), tl.ActiveID())
}

func TestTabList_SnapshotIsDeepCopy(t *testing.T) {
	tl := entity.NewTabList()
	snap := tl.Snapshot()

	tl.Active().Push("https://a.com")

	assert.Equal(t, []string{""}, snap[0].History)
}
