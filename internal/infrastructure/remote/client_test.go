package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/domain/entity"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type requestLog struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (l *requestLog) add(r recordedRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, r)
}

func (l *requestLog) all() []recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedRequest(nil), l.requests...)
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *requestLog) {
	t.Helper()
	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		log.add(recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL + "/api/", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return client, log
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func success(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func TestNewClient_ValidatesBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "http://"})
	assert.Error(t, err)

	c, err := NewClient(Config{BaseURL: "https://api.example.com/v1/"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestClient_Login(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"user": map[string]any{
				"_id":      "65f0c0ffee",
				"username": "ada",
				"password": "ignored",
				"settings": map[string]string{"searchEngine": "https://duckduckgo.com/?q="},
				"tabs": []map[string]any{{
					"id": 1, "title": "Go", "url": "https://go.dev",
					"history": []string{"", "https://go.dev"}, "currentIndex": 1,
					"lastRefresh": 1700000000000, "zoom": 1.2,
				}},
				"history": []map[string]any{
					{"id": 1, "url": "https://a.dev", "title": "a", "timestamp": "10:00:00"},
					{"id": 2, "url": "https://b.dev", "title": "b", "timestamp": "10:00:01"},
				},
				"bookmarks": []map[string]string{{"url": "https://go.dev", "title": "Go"}},
				"shortcuts": []map[string]any{{"id": "s1", "title": "Go", "url": "https://go.dev", "isCustom": true}},
			},
		})
	})

	snap, err := client.Login(context.Background(), port.Credentials{Username: "ada", Password: "pw", Email: "x@y.z"})
	require.NoError(t, err)

	reqs := requests.all()
	require.Len(t, reqs, 1)
	req := reqs[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/login", req.Path)
	assert.JSONEq(t, `{"username":"ada","password":"pw"}`, req.Body)

	assert.Equal(t, "65f0c0ffee", snap.UserID)
	assert.Equal(t, "ada", snap.Username)
	assert.Equal(t, "https://duckduckgo.com/?q=", snap.Settings.SearchEngine)
	require.Len(t, snap.Tabs, 1)
	assert.Equal(t, entity.TabID(1), snap.Tabs[0].ID)
	assert.Equal(t, int64(1700000000000), snap.Tabs[0].LastRefresh.UnixMilli())
	assert.InDelta(t, 1.2, snap.Tabs[0].Zoom, 1e-9)
	require.Len(t, snap.History, 2)
	assert.Equal(t, int64(2), snap.History[0].ID, "history is newest first")
	assert.Equal(t, []entity.Bookmark{{URL: "https://go.dev", Title: "Go"}}, snap.Bookmarks)
	require.Len(t, snap.Shortcuts, 1)
	assert.True(t, snap.Shortcuts[0].IsCustom)
}

func TestClient_LoginRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"status": "error", "message": "Invalid credentials"})
	})

	_, err := client.Login(context.Background(), port.Credentials{Username: "ada", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	var remoteErr *Error
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
	assert.Equal(t, "Invalid credentials", remoteErr.Message)
}

func TestClient_Register(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"user":   map[string]any{"id": "u2", "username": "bob"},
		})
	})

	snap, err := client.Register(context.Background(), port.Credentials{Username: "bob", Password: "pw", Email: "bob@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "/api/register", requests.all()[0].Path)
	assert.JSONEq(t, `{"username":"bob","password":"pw","email":"bob@example.com"}`, requests.all()[0].Body)
	assert.Equal(t, "u2", snap.UserID)
	assert.Empty(t, snap.Tabs)
}

func TestClient_FetchUser(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   map[string]any{"_id": "u1", "username": "ada"},
		})
	})

	snap, err := client.FetchUser(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, requests.all()[0].Method)
	assert.Equal(t, "/api/user/u1", requests.all()[0].Path)
	assert.Equal(t, "u1", snap.UserID)
}

func TestClient_FetchUserNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
	})

	_, err := client.FetchUser(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "User not found")
}

func TestClient_ReplaceCollections(t *testing.T) {
	client, requests := newTestClient(t, success)
	ctx := context.Background()

	refreshed := time.UnixMilli(1700000000123)
	tabs := []entity.Tab{{ID: 3, Title: "Go", URL: "https://go.dev", History: []string{"", "https://go.dev"}, CurrentIndex: 1, Zoom: 1, LastRefresh: refreshed}}

	require.NoError(t, client.ReplaceTabs(ctx, "u1", tabs))
	require.NoError(t, client.ReplaceBookmarks(ctx, "u1", nil))
	require.NoError(t, client.ReplaceShortcuts(ctx, "u1", []entity.Shortcut{{ID: "s1", Title: "Go", URL: "https://go.dev"}}))
	require.NoError(t, client.ReplaceSettings(ctx, "u1", entity.Settings{SearchEngine: "https://www.bing.com/search?q="}))

	reqs := requests.all()
	require.Len(t, reqs, 4)

	assert.Equal(t, "/api/user/u1/tabs", reqs[0].Path)
	assert.JSONEq(t, `[{"id":3,"title":"Go","url":"https://go.dev","history":["","https://go.dev"],"currentIndex":1,"lastRefresh":1700000000123,"zoom":1}]`, reqs[0].Body)

	assert.Equal(t, "/api/user/u1/bookmarks", reqs[1].Path)
	assert.JSONEq(t, `[]`, reqs[1].Body)

	assert.Equal(t, "/api/user/u1/shortcuts", reqs[2].Path)
	assert.JSONEq(t, `[{"id":"s1","title":"Go","url":"https://go.dev","icon":"","gradient":"","isCustom":false}]`, reqs[2].Body)

	assert.Equal(t, "/api/user/u1/settings", reqs[3].Path)
	assert.JSONEq(t, `{"searchEngine":"https://www.bing.com/search?q="}`, reqs[3].Body)

	for _, r := range reqs {
		assert.Equal(t, http.MethodPost, r.Method)
	}
}

func TestClient_HistoryOperations(t *testing.T) {
	client, requests := newTestClient(t, success)
	ctx := context.Background()

	entry := entity.HistoryEntry{ID: 1700000000999, URL: "https://go.dev", Title: "go.dev", Timestamp: "12:00:00"}
	require.NoError(t, client.AppendHistory(ctx, "u1", entry))
	require.NoError(t, client.DeleteHistory(ctx, "u1", 1700000000999))
	require.NoError(t, client.ClearHistory(ctx, "u1"))

	reqs := requests.all()
	require.Len(t, reqs, 3)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/user/u1/history", reqs[0].Path)
	assert.JSONEq(t, `{"id":1700000000999,"url":"https://go.dev","title":"go.dev","timestamp":"12:00:00"}`, reqs[0].Body)

	assert.Equal(t, http.MethodDelete, reqs[1].Method)
	assert.Equal(t, "/api/user/u1/history/1700000000999", reqs[1].Path)

	assert.Equal(t, http.MethodDelete, reqs[2].Method)
	assert.Equal(t, "/api/user/u1/history", reqs[2].Path)
}

func TestClient_ErrorEnvelopeWith200IsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "error", "message": "quota exceeded"})
	})

	err := client.ClearHistory(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrRemote)
}

func TestClient_ServerErrorUsesErrorField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "db down"})
	})

	err := client.ReplaceTabs(context.Background(), "u1", nil)

	var remoteErr *Error
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "db down", remoteErr.Message)
}

func TestClient_TransportErrorIsNotRemote(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	require.NoError(t, err)

	err = client.ClearHistory(context.Background(), "u1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRemote)
}

func TestClient_Suggest(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `["go",["golang",{"phrase":"go tutorial"},"",{"phrase":""}]]`)
	})

	phrases, err := client.Suggest(context.Background(), "go lang", "google")
	require.NoError(t, err)

	assert.Equal(t, []string{"golang", "go tutorial"}, phrases)
	assert.Equal(t, "/api/suggestions", requests.all()[0].Path)
	assert.Equal(t, "engine=google&q=go+lang", requests.all()[0].Query)
}

func TestClient_SuggestMalformed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `["go"]`)
	})

	_, err := client.Suggest(context.Background(), "go", "google")

	assert.Error(t, err)
}

func TestEndpoint_EscapesSegments(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "https://api.example.com/base"})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/base/user/a%2Fb/tabs", c.endpoint(nil, userPath("a/b", "tabs")...))
}
