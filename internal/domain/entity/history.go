package entity

import (
	"sync"
	"time"
)

// HistoryTimestampLayout is the display format stored with each history entry.
const HistoryTimestampLayout = "15:04:05"

// HistoryEntry is one completed navigation in the global, cross-tab history log.
type HistoryEntry struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

var (
	historyIDMu   sync.Mutex
	lastHistoryID int64
)

// NextHistoryID returns a time-derived id (unix millis) that is strictly
// greater than every id previously issued by this process.
func NextHistoryID(now time.Time) int64 {
	historyIDMu.Lock()
	defer historyIDMu.Unlock()

	id := now.UnixMilli()
	if id <= lastHistoryID {
		id = lastHistoryID + 1
	}
	lastHistoryID = id
	return id
}

// ObserveHistoryID makes later ids sort after a hydrated entry.
func ObserveHistoryID(id int64) {
	historyIDMu.Lock()
	defer historyIDMu.Unlock()

	if id > lastHistoryID {
		lastHistoryID = id
	}
}

// NewHistoryEntry creates an entry stamped with now.
func NewHistoryEntry(url, title string, now time.Time) HistoryEntry {
	return HistoryEntry{
		ID:        NextHistoryID(now),
		URL:       url,
		Title:     title,
		Timestamp: now.Format(HistoryTimestampLayout),
	}
}

// HistoryLog is the reverse-chronological global history (newest first).
type HistoryLog struct {
	entries []HistoryEntry
}

// NewHistoryLog wraps hydrated entries, assumed newest first.
func NewHistoryLog(entries []HistoryEntry) *HistoryLog {
	log := &HistoryLog{entries: append([]HistoryEntry(nil), entries...)}
	for _, e := range log.entries {
		ObserveHistoryID(e.ID)
	}
	return log
}

// Prepend records a new entry at the front.
func (h *HistoryLog) Prepend(e HistoryEntry) {
	h.entries = append([]HistoryEntry{e}, h.entries...)
}

// PatchTitle updates the title of the most recent entry for url.
// Returns false when no entry for url exists.
func (h *HistoryLog) PatchTitle(url, title string) bool {
	for i := range h.entries {
		if h.entries[i].URL == url {
			h.entries[i].Title = title
			return true
		}
	}
	return false
}

// Delete removes the entry with the given id.
func (h *HistoryLog) Delete(id int64) bool {
	for i := range h.entries {
		if h.entries[i].ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the log.
func (h *HistoryLog) Clear() {
	h.entries = nil
}

// Len returns the number of entries.
func (h *HistoryLog) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log, newest first.
func (h *HistoryLog) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}
