// Package cli wires configuration, storage and the remote service into the
// session use cases for the atlas command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/application/usecase"
	"github.com/bnema/atlas/internal/cli/styles"
	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/infrastructure/cache"
	"github.com/bnema/atlas/internal/infrastructure/config"
	"github.com/bnema/atlas/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/atlas/internal/infrastructure/remote"
	"github.com/bnema/atlas/internal/logging"
)

// closeTimeout bounds the final sync flush on exit.
const closeTimeout = 15 * time.Second

// AppOptions tune how the App is built for one invocation.
type AppOptions struct {
	// ConfigFile overrides the XDG config path.
	ConfigFile string
	// Verbose mirrors logs to stderr. Interactive commands leave it off so
	// log lines do not corrupt the terminal UI.
	Verbose bool
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme

	// Remote is nil when no api.base_url is configured.
	Remote *remote.Client

	SessionUC *usecase.ManageSessionUseCase
	SuggestUC *usecase.SuggestUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()

	restoreOnce sync.Once
	session     *usecase.Session
	restoreErr  error
}

// NewApp loads configuration and builds every dependency. Nothing touches
// the network or the database until a command needs it.
func NewApp(opts AppOptions) (*App, error) {
	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logDir, _ := config.GetLogDir()
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: cfg.Logging.File, Dir: logDir, WriteToStderr: opts.Verbose},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		db:            sqlite.NewLazyDB(cfg.Database.Path),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}

	var (
		auth     port.Authenticator
		store    port.RemoteStore
		provider port.SuggestionProvider
	)
	if !cfg.Offline() {
		client, err := remote.NewClient(remote.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout})
		if err != nil {
			app.closeLogs()
			return nil, fmt.Errorf("configure remote service: %w", err)
		}
		app.Remote = client
		auth, store = client, client
		if cfg.Suggestions.Enabled {
			provider = cache.NewSuggestionCache(client, cache.DefaultSuggestionCapacity, cache.DefaultSuggestionTTL)
		}
	}

	app.SessionUC = usecase.NewManageSessionUseCase(
		auth,
		store,
		sqlite.NewLazySnapshotRepository(app.db),
		usecase.SyncConfig{Debounce: cfg.Sync.Debounce, HistoryQueueSize: cfg.Sync.HistoryQueueSize},
	)
	app.SessionUC.SetDefaultSettings(entity.Settings{SearchEngine: cfg.DefaultSearchEngine})
	app.SuggestUC = usecase.NewSuggestUseCase(provider, cfg.Suggestions.MinQueryLength)

	logger.Debug().
		Bool("offline", cfg.Offline()).
		Str("config", mgr.ConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("app initialized")
	return app, nil
}

func newConfigManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerWithFile(configFile)
	}
	return config.NewManager()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Session restores the last session once per invocation.
func (a *App) Session() (*usecase.Session, error) {
	a.restoreOnce.Do(func() {
		a.session, a.restoreErr = a.SessionUC.Restore(a.ctx)
	})
	if a.restoreErr != nil {
		return nil, a.restoreErr
	}
	// Login/Logout replace the live session.
	if current := a.SessionUC.Current(); current != nil {
		return current, nil
	}
	return a.session, nil
}

// Close flushes pending sync, caches the session and releases resources.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(a.ctx, closeTimeout)
	defer cancel()

	var errs []error
	if err := a.SessionUC.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close session: %w", err))
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	a.closeLogs()
	return errors.Join(errs...)
}

func (a *App) closeLogs() {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
}
