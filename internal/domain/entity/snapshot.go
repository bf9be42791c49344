package entity

import "time"

// Snapshot is the full persisted state of one user: what the auth service
// returns at login, what GET /user/{id} returns, and what the local cache stores.
type Snapshot struct {
	UserID    string         `json:"userId"`
	Username  string         `json:"username"`
	Settings  Settings       `json:"settings"`
	Tabs      []Tab          `json:"tabs"`
	History   []HistoryEntry `json:"history"`
	Bookmarks []Bookmark     `json:"bookmarks"`
	Shortcuts []Shortcut     `json:"shortcuts"`
	UpdatedAt time.Time      `json:"updatedAt"`

	// ActiveTabID is local-only; the remote store does not track it.
	ActiveTabID TabID `json:"activeTabId,omitempty"`
}

// Anonymous reports whether the snapshot belongs to no signed-in user.
func (s Snapshot) Anonymous() bool {
	return s.UserID == ""
}
