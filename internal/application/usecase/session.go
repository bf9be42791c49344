package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/domain/autocomplete"
	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/domain/repository"
	"github.com/bnema/atlas/internal/domain/url"
	"github.com/bnema/atlas/internal/domain/validation"
	"github.com/bnema/atlas/internal/logging"
)

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// ErrInvalidShortcut wraps shortcut field validation failures.
var ErrInvalidShortcut = errors.New("invalid shortcut")

// Session owns one user's browsing state: the tab registry with per-tab
// navigation stacks, the global history log, bookmarks, shortcuts and
// settings. Every mutation is mirrored through the SyncOrchestrator.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	userID   string
	username string

	tabs      *entity.TabList
	history   *entity.HistoryLog
	bookmarks []entity.Bookmark
	shortcuts []entity.Shortcut
	settings  entity.Settings

	sync  *SyncOrchestrator
	cache repository.SnapshotRepository
	now   func() time.Time
}

// NewSession hydrates a session from a snapshot. A nil snapshot starts an
// anonymous session with defaults. Hydration only overrides what the
// snapshot carries; an empty tab list keeps the single home tab.
// syncer and cache may be nil.
func NewSession(snap *entity.Snapshot, syncer *SyncOrchestrator, cache repository.SnapshotRepository) *Session {
	s := &Session{
		sync:  syncer,
		cache: cache,
		now:   time.Now,
	}
	s.hydrate(snap)
	if s.sync == nil {
		s.sync = NewSyncOrchestrator(context.Background(), nil, "", SyncConfig{})
	}
	return s
}

func (s *Session) hydrate(snap *entity.Snapshot) {
	s.tabs = entity.NewTabList()
	s.history = entity.NewHistoryLog(nil)
	s.bookmarks = nil
	s.shortcuts = nil
	s.settings = entity.DefaultSettings()
	if snap == nil {
		return
	}

	s.userID = snap.UserID
	s.username = snap.Username
	if len(snap.Tabs) > 0 {
		s.tabs = entity.NewTabListFrom(snap.Tabs)
		if snap.ActiveTabID != 0 {
			s.tabs.Activate(snap.ActiveTabID)
		}
	}
	if len(snap.History) > 0 {
		s.history = entity.NewHistoryLog(snap.History)
	}
	if snap.Bookmarks != nil {
		s.bookmarks = append([]entity.Bookmark(nil), snap.Bookmarks...)
	}
	if snap.Shortcuts != nil {
		s.shortcuts = append([]entity.Shortcut(nil), snap.Shortcuts...)
	}
	if strings.TrimSpace(snap.Settings.SearchEngine) != "" {
		s.settings = snap.Settings
	}
}

// UserID returns the signed-in user id, or "" for an anonymous session.
func (s *Session) UserID() string {
	return s.userID
}

// Username returns the signed-in username, or "".
func (s *Session) Username() string {
	return s.username
}

// Sync exposes the orchestrator for status queries.
func (s *Session) Sync() *SyncOrchestrator {
	return s.sync
}

// Snapshot returns a deep copy of the full session state.
func (s *Session) Snapshot() entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() entity.Snapshot {
	return entity.Snapshot{
		UserID:    s.userID,
		Username:  s.username,
		Settings:  s.settings,
		Tabs:      s.tabs.Snapshot(),
		History:   s.history.Entries(),
		Bookmarks: append([]entity.Bookmark(nil), s.bookmarks...),
		Shortcuts: append([]entity.Shortcut(nil), s.shortcuts...),
		UpdatedAt: s.now(),

		ActiveTabID: s.tabs.ActiveID(),
	}
}

// Persist writes the current state to the local cache.
func (s *Session) Persist(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	snap := s.Snapshot()
	if err := s.cache.Save(ctx, &snap); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Str("user_id", snap.UserID).
		Int("tabs", len(snap.Tabs)).
		Int("history", len(snap.History)).
		Msg("session persisted")
	return nil
}

// Close flushes pending sync work and stops the orchestrator.
func (s *Session) Close(ctx context.Context) error {
	return s.sync.Close(ctx)
}

// ResyncAll schedules every collection for upload, e.g. after working offline.
// History is append-only remotely and is not replayed.
func (s *Session) ResyncAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduleTabsLocked()
	s.sync.Schedule(BookmarksPayload{Bookmarks: append([]entity.Bookmark(nil), s.bookmarks...)})
	s.scheduleShortcutsLocked()
	s.sync.Schedule(SettingsPayload{Settings: s.settings})
	logging.FromContext(ctx).Debug().Msg("full resync scheduled")
}

// LocalData returns copies of the collections searched for suggestions.
func (s *Session) LocalData() autocomplete.LocalData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return autocomplete.LocalData{
		History:   s.history.Entries(),
		Bookmarks: append([]entity.Bookmark(nil), s.bookmarks...),
		Shortcuts: append([]entity.Shortcut(nil), s.shortcuts...),
	}
}

// scheduleTabsLocked queues a full tab collection sync. Caller holds s.mu.
func (s *Session) scheduleTabsLocked() {
	s.sync.Schedule(TabsPayload{Tabs: s.tabs.Snapshot()})
}

// --- Navigation ---

// Navigate resolves input against the current search template and moves the
// active tab there. Returns a copy of the updated tab.
func (s *Session) Navigate(ctx context.Context, input string) entity.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Active()
	target := s.resolveLocked(input)
	title := url.TitleForURL(target)

	log := logging.FromContext(ctx)
	log.Debug().
		Int("tab_id", int(tab.ID)).
		Str("input", logging.TruncateURL(input, logURLMaxLen)).
		Str("url", logging.TruncateURL(target, logURLMaxLen)).
		Msg("navigating")

	if target == tab.History[tab.CurrentIndex] {
		tab.URL = target
		tab.Title = title
		s.scheduleTabsLocked()
		return tab.Clone()
	}

	tab.Push(target)
	tab.Title = title
	s.scheduleTabsLocked()
	s.recordHistoryLocked(target, title)

	log.Info().Str("url", logging.TruncateURL(target, logURLMaxLen)).Msg("navigation committed")
	return tab.Clone()
}

// resolveLocked re-derives search URLs from their query so resubmitting a
// result page goes through the current engine without double encoding.
func (s *Session) resolveLocked(input string) string {
	trimmed := strings.TrimSpace(input)
	if query, ok := url.ExtractQuery(trimmed); ok && query != "" {
		return url.BuildSearchURL(query, s.settings.SearchEngine)
	}
	return url.Resolve(trimmed, s.settings.SearchEngine)
}

func (s *Session) recordHistoryLocked(target, title string) {
	if strings.TrimSpace(target) == "" {
		return
	}
	entry := entity.NewHistoryEntry(target, title, s.now())
	s.history.Prepend(entry)
	s.sync.AddHistory(entry)
}

// GoBack moves the active tab one entry back. Returns false at the oldest entry.
func (s *Session) GoBack(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Active()
	if !tab.Back() {
		return false
	}
	tab.Title = url.TitleForURL(tab.URL)
	s.scheduleTabsLocked()
	logging.FromContext(ctx).Debug().Int("tab_id", int(tab.ID)).Int("index", tab.CurrentIndex).Msg("went back")
	return true
}

// GoForward moves the active tab one entry forward. Returns false at the newest entry.
func (s *Session) GoForward(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Active()
	if !tab.Forward() {
		return false
	}
	tab.Title = url.TitleForURL(tab.URL)
	s.scheduleTabsLocked()
	logging.FromContext(ctx).Debug().Int("tab_id", int(tab.ID)).Int("index", tab.CurrentIndex).Msg("went forward")
	return true
}

// Refresh stamps the active tab so the rendering host reloads it.
func (s *Session) Refresh(ctx context.Context) entity.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Active()
	tab.LastRefresh = s.now()
	s.scheduleTabsLocked()
	logging.FromContext(ctx).Debug().Int("tab_id", int(tab.ID)).Msg("refresh requested")
	return tab.Clone()
}

// HandleZoom adjusts the active tab zoom and returns the new factor.
func (s *Session) HandleZoom(ctx context.Context, dir entity.ZoomDirection) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Active()
	tab.Zoom = entity.ApplyZoom(tab.Zoom, dir)
	s.scheduleTabsLocked()
	logging.FromContext(ctx).Debug().
		Int("tab_id", int(tab.ID)).
		Str("direction", string(dir)).
		Float64("zoom", tab.Zoom).
		Msg("zoom changed")
	return tab.Zoom
}

// --- Tab registry ---

// Tabs returns copies of all tabs in order.
func (s *Session) Tabs() []entity.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs.Snapshot()
}

// ActiveTab returns a copy of the active tab.
func (s *Session) ActiveTab() entity.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs.Active().Clone()
}

// AddTab opens a home tab and activates it.
func (s *Session) AddTab(ctx context.Context) entity.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Add()
	s.scheduleTabsLocked()
	logging.FromContext(ctx).Debug().Int("tab_id", int(tab.ID)).Int("count", s.tabs.Count()).Msg("tab added")
	return tab
}

// CloseTab removes a tab. The only remaining tab and unknown ids are ignored.
func (s *Session) CloseTab(ctx context.Context, id entity.TabID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tabs.Remove(id) {
		return false
	}
	s.scheduleTabsLocked()
	logging.FromContext(ctx).Debug().
		Int("tab_id", int(id)).
		Int("active_id", int(s.tabs.ActiveID())).
		Msg("tab closed")
	return true
}

// ActivateTab switches the active tab. Not synced: the active pointer is local.
func (s *Session) ActivateTab(ctx context.Context, id entity.TabID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tabs.Activate(id) {
		return false
	}
	logging.FromContext(ctx).Debug().Int("tab_id", int(id)).Msg("tab activated")
	return true
}

// --- Bookmarks ---

// Bookmarks returns a copy of the bookmark list.
func (s *Session) Bookmarks() []entity.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Bookmark(nil), s.bookmarks...)
}

// ToggleBookmark adds or removes the active tab's page. Returns whether the
// page is bookmarked afterwards. A tab on the home page is left untouched.
func (s *Session) ToggleBookmark(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Active()
	if tab.URL == "" {
		return false
	}

	log := logging.FromContext(ctx)
	if idx := s.bookmarkIndexLocked(tab.URL); idx >= 0 {
		s.bookmarks = append(s.bookmarks[:idx:idx], s.bookmarks[idx+1:]...)
		s.sync.Schedule(BookmarksPayload{Bookmarks: append([]entity.Bookmark(nil), s.bookmarks...)})
		log.Info().Str("url", logging.TruncateURL(tab.URL, logURLMaxLen)).Msg("bookmark removed")
		return false
	}

	title := url.CleanTitle(tab.Title)
	if title == "" {
		title = entity.DefaultBookmarkTitle
	}
	s.bookmarks = append(s.bookmarks, entity.Bookmark{URL: tab.URL, Title: title})
	s.sync.Schedule(BookmarksPayload{Bookmarks: append([]entity.Bookmark(nil), s.bookmarks...)})
	log.Info().Str("url", logging.TruncateURL(tab.URL, logURLMaxLen)).Msg("bookmark added")
	return true
}

// IsBookmarked reports whether the active tab's page is bookmarked.
func (s *Session) IsBookmarked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Active()
	return tab.URL != "" && s.bookmarkIndexLocked(tab.URL) >= 0
}

// bookmarkIndexLocked matches by exact URL, then by search query so the same
// search on another engine counts as the same bookmark.
func (s *Session) bookmarkIndexLocked(rawURL string) int {
	for i, b := range s.bookmarks {
		if b.URL == rawURL {
			return i
		}
	}
	query, ok := url.ExtractQuery(rawURL)
	if !ok || query == "" {
		return -1
	}
	for i, b := range s.bookmarks {
		if q, ok := url.ExtractQuery(b.URL); ok && q == query {
			return i
		}
	}
	return -1
}

// --- Shortcuts ---

// Shortcuts returns a copy of the shortcut list.
func (s *Session) Shortcuts() []entity.Shortcut {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Shortcut(nil), s.shortcuts...)
}

// AddShortcut appends a custom shortcut. rawURL goes through the resolver;
// an empty title falls back to the target's display title.
func (s *Session) AddShortcut(ctx context.Context, title, rawURL, icon, gradient string) (entity.Shortcut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(rawURL) == "" {
		return entity.Shortcut{}, fmt.Errorf("%w: shortcut url cannot be empty", ErrInvalidShortcut)
	}
	target := url.Resolve(rawURL, s.settings.SearchEngine)
	title = strings.TrimSpace(title)
	if title == "" {
		title = url.DisplayTitle(target)
	}
	if errs := validation.ValidateShortcut(title, target, icon, gradient); len(errs) > 0 {
		return entity.Shortcut{}, fmt.Errorf("%w: %s", ErrInvalidShortcut, strings.Join(errs, "; "))
	}

	sc := entity.NewCustomShortcut(title, target, icon, gradient)
	s.shortcuts = append(s.shortcuts, sc)
	s.scheduleShortcutsLocked()
	logging.FromContext(ctx).Info().Str("id", sc.ID).Str("title", sc.Title).Msg("shortcut added")
	return sc, nil
}

// RemoveShortcut deletes a shortcut by id.
func (s *Session) RemoveShortcut(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.shortcuts {
		if sc.ID == id {
			s.shortcuts = append(s.shortcuts[:i:i], s.shortcuts[i+1:]...)
			s.scheduleShortcutsLocked()
			logging.FromContext(ctx).Info().Str("id", id).Msg("shortcut removed")
			return true
		}
	}
	return false
}

// ReplaceShortcuts swaps the whole shortcut list, e.g. after reordering.
func (s *Session) ReplaceShortcuts(ctx context.Context, shortcuts []entity.Shortcut) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shortcuts = append([]entity.Shortcut(nil), shortcuts...)
	s.scheduleShortcutsLocked()
	logging.FromContext(ctx).Debug().Int("count", len(shortcuts)).Msg("shortcuts replaced")
}

func (s *Session) scheduleShortcutsLocked() {
	s.sync.Schedule(ShortcutsPayload{Shortcuts: append([]entity.Shortcut(nil), s.shortcuts...)})
}

// --- Settings ---

// Settings returns the current settings.
func (s *Session) Settings() entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSearchEngine changes the search URL template. An empty template restores the default.
func (s *Session) SetSearchEngine(ctx context.Context, template string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	template = strings.TrimSpace(template)
	if template == "" {
		template = entity.DefaultSearchEngine
	}
	s.settings.SearchEngine = template
	s.sync.Schedule(SettingsPayload{Settings: s.settings})
	logging.FromContext(ctx).Info().
		Str("engine", url.EngineFor(template).ID).
		Str("template", template).
		Msg("search engine changed")
}

// --- History ---

// History returns the global history, newest first.
func (s *Session) History() []entity.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// DeleteHistoryItem removes one history entry and dispatches the removal immediately.
func (s *Session) DeleteHistoryItem(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.history.Delete(id) {
		return false
	}
	s.sync.DeleteHistory(id)
	logging.FromContext(ctx).Debug().Int64("id", id).Msg("history entry deleted")
	return true
}

// ClearHistory empties the global history and dispatches the wipe immediately.
func (s *Session) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Clear()
	s.sync.ClearHistory()
	logging.FromContext(ctx).Info().Msg("history cleared")
}

// --- Rendering host events ---

// HandleHostEvent applies one notification from the rendering host.
// Events for unknown tabs are ignored.
func (s *Session) HandleHostEvent(ctx context.Context, ev port.HostEvent) {
	ctx = logging.WithTabID(ctx, int(ev.TabID))
	log := logging.FromContext(ctx).With().
		Str("event", ev.Kind.String()).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.tabs.Find(ev.TabID)
	if tab == nil {
		log.Debug().Msg("host event for unknown tab ignored")
		return
	}

	switch ev.Kind {
	case port.HostLoadStarted, port.HostLoadFinished:
		log.Debug().Str("url", logging.TruncateURL(tab.URL, logURLMaxLen)).Msg("host load progress")

	case port.HostLoadFailed:
		log.Warn().Err(ev.Err).Str("url", logging.TruncateURL(ev.URL, logURLMaxLen)).Msg("host load failed")

	case port.HostRedirected:
		if ev.URL == "" || ev.URL == tab.URL {
			return
		}
		tab.ReplaceCurrent(ev.URL)
		tab.Title = url.TitleForURL(ev.URL)
		s.scheduleTabsLocked()
		log.Debug().Str("url", logging.TruncateURL(ev.URL, logURLMaxLen)).Msg("redirect applied")

	case port.HostInPageNavigation:
		if ev.URL == "" || ev.URL == tab.History[tab.CurrentIndex] {
			return
		}
		title := url.TitleForURL(ev.URL)
		tab.Push(ev.URL)
		tab.Title = title
		s.scheduleTabsLocked()
		s.recordHistoryLocked(ev.URL, title)

	case port.HostTitleChanged:
		title := url.CleanTitle(ev.Title)
		if title == "" || title == tab.Title {
			return
		}
		tab.Title = title
		if tab.URL != "" {
			s.history.PatchTitle(tab.URL, title)
		}
		s.scheduleTabsLocked()
		log.Debug().Str("title", title).Msg("title updated")
	}
}

// ConsumeHostEvents applies events until ch is closed or ctx ends.
func (s *Session) ConsumeHostEvents(ctx context.Context, ch <-chan port.HostEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			s.HandleHostEvent(ctx, ev)
		}
	}
}
