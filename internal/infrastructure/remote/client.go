// Package remote implements the account, sync and suggestion ports against
// the JSON-over-HTTP browsing service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/logging"
)

const (
	// DefaultTimeout bounds every request when the config leaves it unset.
	DefaultTimeout = 10 * time.Second

	userAgent = "atlas/1.0"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 8 << 20
)

// Config configures the HTTP client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the remote service. It implements port.RemoteStore,
// port.Authenticator and port.SuggestionProvider.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

var (
	_ port.RemoteStore        = (*Client)(nil)
	_ port.Authenticator      = (*Client)(nil)
	_ port.SuggestionProvider = (*Client)(nil)
)

// NewClient validates the base URL and builds a client.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: missing host", cfg.BaseURL)
	}
	base.Path = strings.TrimRight(base.Path, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := *c.baseURL
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u.Path = c.baseURL.Path + "/" + strings.Join(segments, "/")
	u.RawPath = c.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func userPath(userID string, rest ...string) []string {
	return append([]string{"user", userID}, rest...)
}

// do sends a request and returns the raw body of a successful response.
// Non-2xx statuses and error envelopes become *Error.
func (c *Client) do(ctx context.Context, op, method, target string, body any) ([]byte, error) {
	log := logging.FromContext(ctx)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("op", op).Msg("failed to close response body")
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	log.Debug().
		Str("op", op).
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("remote call")

	var env envelope
	// Bodies that are not envelopes (suggestion arrays) are fine.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || env.failed() {
		return nil, &Error{Op: op, StatusCode: resp.StatusCode, Message: env.errorText()}
	}
	return raw, nil
}

// --- Authenticator ---

// Login exchanges credentials for the user's snapshot.
func (c *Client) Login(ctx context.Context, creds port.Credentials) (*entity.Snapshot, error) {
	return c.authenticate(ctx, "login", port.Credentials{Username: creds.Username, Password: creds.Password})
}

// Register creates an account and returns its (empty) snapshot.
func (c *Client) Register(ctx context.Context, creds port.Credentials) (*entity.Snapshot, error) {
	return c.authenticate(ctx, "register", creds)
}

func (c *Client) authenticate(ctx context.Context, op string, creds port.Credentials) (*entity.Snapshot, error) {
	raw, err := c.do(ctx, op, http.MethodPost, c.endpoint(nil, op), creds)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return decodeUser(op, env.User)
}

func decodeUser(op string, raw json.RawMessage) (*entity.Snapshot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: "response carries no user"}
	}
	var user userDTO
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%s: failed to decode user: %w", op, err)
	}
	snap := user.toSnapshot()
	if snap.UserID == "" {
		return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: "user has no id"}
	}
	return snap, nil
}

// --- RemoteStore ---

// FetchUser returns the assembled user document.
func (c *Client) FetchUser(ctx context.Context, userID string) (*entity.Snapshot, error) {
	const op = "fetch user"
	raw, err := c.do(ctx, op, http.MethodGet, c.endpoint(nil, userPath(userID)...), nil)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return decodeUser(op, env.Data)
}

// ReplaceSettings overwrites the user's settings document.
func (c *Client) ReplaceSettings(ctx context.Context, userID string, settings entity.Settings) error {
	_, err := c.do(ctx, "sync settings", http.MethodPost, c.endpoint(nil, userPath(userID, "settings")...), settings)
	return err
}

// ReplaceTabs overwrites the user's tab collection.
func (c *Client) ReplaceTabs(ctx context.Context, userID string, tabs []entity.Tab) error {
	body := make([]tabDTO, 0, len(tabs))
	for _, t := range tabs {
		body = append(body, tabToDTO(t))
	}
	_, err := c.do(ctx, "sync tabs", http.MethodPost, c.endpoint(nil, userPath(userID, "tabs")...), body)
	return err
}

// ReplaceBookmarks overwrites the user's bookmark collection.
func (c *Client) ReplaceBookmarks(ctx context.Context, userID string, bookmarks []entity.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []entity.Bookmark{}
	}
	_, err := c.do(ctx, "sync bookmarks", http.MethodPost, c.endpoint(nil, userPath(userID, "bookmarks")...), bookmarks)
	return err
}

// ReplaceShortcuts overwrites the user's shortcut collection.
func (c *Client) ReplaceShortcuts(ctx context.Context, userID string, shortcuts []entity.Shortcut) error {
	if shortcuts == nil {
		shortcuts = []entity.Shortcut{}
	}
	_, err := c.do(ctx, "sync shortcuts", http.MethodPost, c.endpoint(nil, userPath(userID, "shortcuts")...), shortcuts)
	return err
}

// AppendHistory pushes one entry to the front of the user's history.
func (c *Client) AppendHistory(ctx context.Context, userID string, entry entity.HistoryEntry) error {
	_, err := c.do(ctx, "append history", http.MethodPost, c.endpoint(nil, userPath(userID, "history")...), entry)
	return err
}

// ClearHistory removes all of the user's history.
func (c *Client) ClearHistory(ctx context.Context, userID string) error {
	_, err := c.do(ctx, "clear history", http.MethodDelete, c.endpoint(nil, userPath(userID, "history")...), nil)
	return err
}

// DeleteHistory removes one entry by id.
func (c *Client) DeleteHistory(ctx context.Context, userID string, entryID int64) error {
	target := c.endpoint(nil, userPath(userID, "history", strconv.FormatInt(entryID, 10))...)
	_, err := c.do(ctx, "delete history", http.MethodDelete, target, nil)
	return err
}

// --- SuggestionProvider ---

// Suggest returns the service's search phrases for query.
// The response is [query, [item...]] where an item is a string or {"phrase": ...}.
func (c *Client) Suggest(ctx context.Context, query, engine string) ([]string, error) {
	const op = "suggestions"
	params := url.Values{}
	params.Set("q", query)
	params.Set("engine", engine)

	raw, err := c.do(ctx, op, http.MethodGet, c.endpoint(params, "suggestions"), nil)
	if err != nil {
		return nil, err
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	if len(parts) < 2 {
		return nil, errors.New(op + ": malformed response")
	}
	var items []suggestionItem
	if err := json.Unmarshal(parts[1], &items); err != nil {
		return nil, fmt.Errorf("%s: failed to decode items: %w", op, err)
	}

	phrases := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			phrases = append(phrases, string(item))
		}
	}
	return phrases, nil
}
