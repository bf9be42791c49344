package remote

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/bnema/atlas/internal/domain/entity"
)

// envelope is the common response wrapper. Failures carry message or error;
// successful auth calls carry user, GET /user/{id} carries data.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	User    json.RawMessage `json:"user"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) failed() bool {
	return e.Status == "error"
}

func (e envelope) errorText() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// tabDTO is the wire tab; lastRefresh travels as epoch milliseconds.
type tabDTO struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	History      []string `json:"history"`
	CurrentIndex int      `json:"currentIndex"`
	LastRefresh  int64    `json:"lastRefresh,omitempty"`
	Zoom         float64  `json:"zoom"`
}

func tabToDTO(t entity.Tab) tabDTO {
	dto := tabDTO{
		ID:           int(t.ID),
		Title:        t.Title,
		URL:          t.URL,
		History:      t.History,
		CurrentIndex: t.CurrentIndex,
		Zoom:         t.Zoom,
	}
	if !t.LastRefresh.IsZero() {
		dto.LastRefresh = t.LastRefresh.UnixMilli()
	}
	if dto.History == nil {
		dto.History = []string{}
	}
	return dto
}

func (d tabDTO) toEntity() entity.Tab {
	t := entity.Tab{
		ID:           entity.TabID(d.ID),
		Title:        d.Title,
		URL:          d.URL,
		History:      d.History,
		CurrentIndex: d.CurrentIndex,
		Zoom:         d.Zoom,
	}
	if d.LastRefresh > 0 {
		t.LastRefresh = time.UnixMilli(d.LastRefresh)
	}
	return t
}

// userDTO is the assembled user document.
type userDTO struct {
	MongoID   string                `json:"_id"`
	ID        string                `json:"id"`
	Username  string                `json:"username"`
	Settings  *entity.Settings      `json:"settings"`
	Tabs      []tabDTO              `json:"tabs"`
	History   []entity.HistoryEntry `json:"history"`
	Bookmarks []entity.Bookmark     `json:"bookmarks"`
	Shortcuts []entity.Shortcut     `json:"shortcuts"`
}

func (u userDTO) userID() string {
	if u.MongoID != "" {
		return u.MongoID
	}
	return u.ID
}

// toSnapshot converts the document. History is ordered newest first by id
// because the service does not guarantee an order.
func (u userDTO) toSnapshot() *entity.Snapshot {
	snap := &entity.Snapshot{
		UserID:    u.userID(),
		Username:  u.Username,
		Bookmarks: u.Bookmarks,
		Shortcuts: u.Shortcuts,
		History:   append([]entity.HistoryEntry(nil), u.History...),
	}
	if u.Settings != nil {
		snap.Settings = *u.Settings
	}
	for _, t := range u.Tabs {
		snap.Tabs = append(snap.Tabs, t.toEntity())
	}
	sort.SliceStable(snap.History, func(i, j int) bool {
		return snap.History[i].ID > snap.History[j].ID
	})
	return snap
}

// suggestionItem is either a bare string or an object with a phrase.
type suggestionItem string

func (s *suggestionItem) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*s = suggestionItem(text)
		return nil
	}
	var obj struct {
		Phrase string `json:"phrase"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*s = suggestionItem(obj.Phrase)
	return nil
}
