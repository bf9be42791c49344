package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/domain/repository"
	"github.com/bnema/atlas/internal/logging"
)

var (
	// ErrNotAuthenticated is returned when an operation needs a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNoCachedSession is returned when a user is remembered but neither the
	// local cache nor the remote store can provide their state.
	ErrNoCachedSession = errors.New("no cached session")
	// ErrOffline is returned by sign-in calls when no auth service is configured.
	ErrOffline = errors.New("no remote service configured")
)

// ManageSessionUseCase owns the session lifecycle: sign-in, restore on
// startup and sign-out. At most one Session is live at a time; replacing it
// cancels the previous session's sync.
type ManageSessionUseCase struct {
	auth    port.Authenticator
	remote  port.RemoteStore
	cache   repository.SnapshotRepository
	syncCfg SyncConfig

	// defaults fill in sessions whose snapshot carries no settings.
	defaults entity.Settings

	mu      sync.Mutex
	current *Session
}

// NewManageSessionUseCase creates the lifecycle use case. cache may be nil.
func NewManageSessionUseCase(
	auth port.Authenticator,
	remote port.RemoteStore,
	cache repository.SnapshotRepository,
	syncCfg SyncConfig,
) *ManageSessionUseCase {
	return &ManageSessionUseCase{
		auth:    auth,
		remote:  remote,
		cache:   cache,
		syncCfg: syncCfg,
	}
}

// SetDefaultSettings sets the settings used by sessions that have none yet,
// e.g. the configured search engine. Call before Restore or Login.
func (uc *ManageSessionUseCase) SetDefaultSettings(settings entity.Settings) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.defaults = settings
}

func (uc *ManageSessionUseCase) withDefaults(snap *entity.Snapshot) *entity.Snapshot {
	uc.mu.Lock()
	defaults := uc.defaults
	uc.mu.Unlock()

	if strings.TrimSpace(defaults.SearchEngine) == "" {
		return snap
	}
	if snap == nil {
		return &entity.Snapshot{Settings: defaults}
	}
	if strings.TrimSpace(snap.Settings.SearchEngine) != "" {
		return snap
	}
	filled := *snap
	filled.Settings = defaults
	return &filled
}

// Current returns the live session, or nil before Login/Restore.
func (uc *ManageSessionUseCase) Current() *Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}

// Login authenticates and hydrates a session from the returned snapshot.
func (uc *ManageSessionUseCase) Login(ctx context.Context, username, password string) (*Session, error) {
	creds := port.Credentials{Username: strings.TrimSpace(username), Password: password}
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	if uc.auth == nil {
		return nil, ErrOffline
	}

	snap, err := uc.auth.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	return uc.signIn(ctx, snap)
}

// Register creates an account and starts a session for it.
func (uc *ManageSessionUseCase) Register(ctx context.Context, username, password, email string) (*Session, error) {
	creds := port.Credentials{
		Username: strings.TrimSpace(username),
		Password: password,
		Email:    strings.TrimSpace(email),
	}
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	if uc.auth == nil {
		return nil, ErrOffline
	}

	snap, err := uc.auth.Register(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	return uc.signIn(ctx, snap)
}

func (uc *ManageSessionUseCase) signIn(ctx context.Context, snap *entity.Snapshot) (*Session, error) {
	if snap == nil || snap.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	log := logging.FromContext(ctx)

	session := uc.start(ctx, snap)

	if uc.cache != nil {
		if err := session.Persist(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to cache session")
		}
		if err := uc.cache.SetCurrentUser(ctx, snap.UserID); err != nil {
			log.Warn().Err(err).Msg("failed to remember signed-in user")
		}
	}

	log.Info().Str("user_id", snap.UserID).Str("username", snap.Username).Msg("signed in")
	return session, nil
}

// start replaces the live session. The previous session's pending sync is
// discarded, not flushed.
func (uc *ManageSessionUseCase) start(ctx context.Context, snap *entity.Snapshot) *Session {
	userID := ""
	if snap != nil {
		userID = snap.UserID
	}
	syncCtx := ctx
	if userID != "" {
		syncCtx = logging.WithUserID(ctx, userID)
	}
	syncer := NewSyncOrchestrator(context.WithoutCancel(syncCtx), uc.remote, userID, uc.syncCfg)
	session := NewSession(uc.withDefaults(snap), syncer, uc.cache)

	uc.mu.Lock()
	prev := uc.current
	uc.current = session
	uc.mu.Unlock()

	if prev != nil {
		prev.sync.Cancel()
	}
	return session
}

// Restore rebuilds the session of the last signed-in user. The cached
// snapshot and a fresh remote copy are loaded concurrently; the remote copy
// wins when it arrives, otherwise the cached state is kept. Without a
// remembered user the cached anonymous state (or defaults) is used.
func (uc *ManageSessionUseCase) Restore(ctx context.Context) (*Session, error) {
	log := logging.FromContext(ctx)

	if uc.cache == nil {
		return uc.start(ctx, nil), nil
	}

	userID, err := uc.cache.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read signed-in user: %w", err)
	}

	var (
		cached    *entity.Snapshot
		fresh     *entity.Snapshot
		remoteErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap, err := uc.cache.Get(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load cached session: %w", err)
		}
		cached = snap
		return nil
	})
	if userID != "" && uc.remote != nil {
		g.Go(func() error {
			// Remote failures degrade to the cached copy.
			fresh, remoteErr = uc.remote.FetchUser(gctx, userID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if userID == "" {
		log.Debug().Bool("cached", cached != nil).Msg("restoring anonymous session")
		return uc.start(ctx, cached), nil
	}

	snap := cached
	switch {
	case remoteErr == nil && fresh != nil:
		snap = mergeRestored(userID, cached, fresh)
		log.Debug().Str("user_id", userID).Msg("session refreshed from remote")
	case cached != nil:
		log.Warn().Err(remoteErr).Str("user_id", userID).Msg("remote refresh failed, using cached session")
	default:
		if remoteErr == nil {
			remoteErr = errors.New("empty response")
		}
		return nil, fmt.Errorf("%w for %s: %w", ErrNoCachedSession, userID, remoteErr)
	}

	session := uc.start(ctx, snap)
	if err := session.Persist(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to cache restored session")
	}
	return session, nil
}

// mergeRestored takes the remote copy and keeps the local-only fields of the cached one.
func mergeRestored(userID string, cached, fresh *entity.Snapshot) *entity.Snapshot {
	merged := *fresh
	merged.UserID = userID
	if cached != nil {
		if merged.Username == "" {
			merged.Username = cached.Username
		}
		merged.ActiveTabID = cached.ActiveTabID
	}
	return &merged
}

// Logout cancels pending sync for the signed-in user, forgets their cached
// state and leaves a fresh anonymous session in place.
func (uc *ManageSessionUseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	prev := uc.current
	uc.mu.Unlock()

	if prev == nil || prev.UserID() == "" {
		return ErrNotAuthenticated
	}
	userID := prev.UserID()

	uc.start(ctx, nil)

	if uc.cache != nil {
		if err := uc.cache.SetCurrentUser(ctx, ""); err != nil {
			return fmt.Errorf("failed to clear signed-in user: %w", err)
		}
		if err := uc.cache.Delete(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete cached session: %w", err)
		}
	}

	logging.FromContext(ctx).Info().Str("user_id", userID).Msg("signed out")
	return nil
}

// Close flushes the live session's sync work and writes it to the cache.
func (uc *ManageSessionUseCase) Close(ctx context.Context) error {
	session := uc.Current()
	if session == nil {
		return nil
	}
	flushErr := session.Close(ctx)
	if err := session.Persist(ctx); err != nil {
		return errors.Join(flushErr, err)
	}
	return flushErr
}
