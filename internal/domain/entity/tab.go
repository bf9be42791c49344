package entity

import "time"

// TabID uniquely identifies a tab within a session. IDs are never reused.
type TabID int

// HomeURL is the empty address shown as the start page.
const HomeURL = ""

// DefaultTabTitle is the title of a tab that has not navigated anywhere.
const DefaultTabTitle = "New Tab"

// Tab is a browsing context with its own back/forward history stack.
// History is never empty and CurrentIndex always points into it.
type Tab struct {
	ID           TabID     `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	History      []string  `json:"history"`
	CurrentIndex int       `json:"currentIndex"`
	Zoom         float64   `json:"zoom"`
	LastRefresh  time.Time `json:"lastRefresh"`
}

// NewTab creates a tab sitting on the home page.
func NewTab(id TabID) Tab {
	return Tab{
		ID:           id,
		Title:        DefaultTabTitle,
		URL:          HomeURL,
		History:      []string{HomeURL},
		CurrentIndex: 0,
		Zoom:         ZoomDefault,
		LastRefresh:  time.Now(),
	}
}

// Clone returns a deep copy so callers never alias the registry's history slice.
func (t Tab) Clone() Tab {
	t.History = append([]string(nil), t.History...)
	return t
}

// CanGoBack reports whether the cursor can move towards older entries.
func (t Tab) CanGoBack() bool {
	return t.CurrentIndex > 0
}

// CanGoForward reports whether the cursor can move towards newer entries.
func (t Tab) CanGoForward() bool {
	return t.CurrentIndex < len(t.History)-1
}

// Push truncates everything after the cursor, appends u and moves the cursor onto it.
func (t *Tab) Push(u string) {
	t.History = append(t.History[:t.CurrentIndex+1:t.CurrentIndex+1], u)
	t.CurrentIndex = len(t.History) - 1
	t.URL = u
}

// Back moves the cursor one entry back. Returns false when already at the oldest entry.
func (t *Tab) Back() bool {
	if !t.CanGoBack() {
		return false
	}
	t.CurrentIndex--
	t.URL = t.History[t.CurrentIndex]
	return true
}

// Forward moves the cursor one entry forward. Returns false when already at the newest entry.
func (t *Tab) Forward() bool {
	if !t.CanGoForward() {
		return false
	}
	t.CurrentIndex++
	t.URL = t.History[t.CurrentIndex]
	return true
}

// ReplaceCurrent rewrites the entry under the cursor (redirects).
func (t *Tab) ReplaceCurrent(u string) {
	t.History[t.CurrentIndex] = u
	t.URL = u
}

// Sanitize restores the tab invariants on records that came from outside
// the registry (remote snapshots, local cache).
func (t *Tab) Sanitize() {
	if len(t.History) == 0 {
		t.History = []string{t.URL}
	}
	if t.CurrentIndex < 0 {
		t.CurrentIndex = 0
	}
	if t.CurrentIndex >= len(t.History) {
		t.CurrentIndex = len(t.History) - 1
	}
	t.URL = t.History[t.CurrentIndex]
	if t.Zoom == 0 {
		t.Zoom = ZoomDefault
	}
	t.Zoom = ClampZoom(t.Zoom)
	if t.Title == "" && t.URL == HomeURL {
		t.Title = DefaultTabTitle
	}
}

// TabList owns the ordered tab collection and the active-tab pointer.
// It always holds at least one tab.
type TabList struct {
	tabs     []Tab
	activeID TabID
	lastID   TabID // highest id ever issued
}

// NewTabList creates a list with a single home tab (id 1).
func NewTabList() *TabList {
	first := NewTab(1)
	return &TabList{tabs: []Tab{first}, activeID: first.ID, lastID: first.ID}
}

// NewTabListFrom builds a list from hydrated tabs, sanitizing each record.
// An empty input yields the default single-tab list. The first tab becomes active.
func NewTabListFrom(tabs []Tab) *TabList {
	if len(tabs) == 0 {
		return NewTabList()
	}
	tl := &TabList{tabs: make([]Tab, 0, len(tabs))}
	seen := make(map[TabID]bool, len(tabs))
	for _, tab := range tabs {
		tab = tab.Clone()
		tab.Sanitize()
		if tab.ID <= 0 || seen[tab.ID] {
			tab.ID = tl.nextID(tabs)
		}
		seen[tab.ID] = true
		tl.lastID = max(tl.lastID, tab.ID)
		tl.tabs = append(tl.tabs, tab)
	}
	tl.activeID = tl.tabs[0].ID
	return tl
}

func (tl *TabList) nextID(extra []Tab) TabID {
	maxID := tl.lastID
	for _, t := range tl.tabs {
		maxID = max(maxID, t.ID)
	}
	for _, t := range extra {
		maxID = max(maxID, t.ID)
	}
	return maxID + 1
}

// Add appends a fresh tab with the next unused id and makes it active.
func (tl *TabList) Add() Tab {
	tab := NewTab(tl.nextID(nil))
	tl.lastID = tab.ID
	tl.tabs = append(tl.tabs, tab)
	tl.activeID = tab.ID
	return tab.Clone()
}

// Remove deletes a tab. The last remaining tab is never removed.
// Removing the active tab activates the one that preceded it, or the new first tab.
func (tl *TabList) Remove(id TabID) bool {
	if len(tl.tabs) <= 1 {
		return false
	}
	idx := tl.indexOf(id)
	if idx < 0 {
		return false
	}
	tl.tabs = append(tl.tabs[:idx], tl.tabs[idx+1:]...)
	if tl.activeID == id {
		if idx > 0 {
			tl.activeID = tl.tabs[idx-1].ID
		} else {
			tl.activeID = tl.tabs[0].ID
		}
	}
	return true
}

// Activate makes id the active tab. Unknown ids are ignored.
func (tl *TabList) Activate(id TabID) bool {
	if tl.indexOf(id) < 0 {
		return false
	}
	tl.activeID = id
	return true
}

// ActiveID returns the active tab id.
func (tl *TabList) ActiveID() TabID {
	return tl.activeID
}

// Active returns a pointer to the active tab for in-place updates.
func (tl *TabList) Active() *Tab {
	return tl.Find(tl.activeID)
}

// Find returns a pointer to the tab with the given id, or nil.
func (tl *TabList) Find(id TabID) *Tab {
	if idx := tl.indexOf(id); idx >= 0 {
		return &tl.tabs[idx]
	}
	return nil
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.tabs)
}

// Snapshot returns a deep copy of all tabs in order.
func (tl *TabList) Snapshot() []Tab {
	out := make([]Tab, len(tl.tabs))
	for i, t := range tl.tabs {
		out[i] = t.Clone()
	}
	return out
}

func (tl *TabList) indexOf(id TabID) int {
	for i := range tl.tabs {
		if tl.tabs[i].ID == id {
			return i
		}
	}
	return -1
}
