package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/domain/repository"
	"github.com/bnema/atlas/internal/logging"
)

// LazyDB opens the cache on first use, so commands that never touch
// cached state (config path, suggest) skip the WASM compile and migrations.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for dbPath without opening it.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB opens the connection once and returns it on every call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("opening snapshot cache")

		db, err := NewConnection(ctx, l.dbPath)

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("snapshot cache unavailable")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazySnapshotRepository defers opening the database to the first call.
type LazySnapshotRepository struct {
	provider port.DatabaseProvider
	repo     repository.SnapshotRepository
	once     sync.Once
	initErr  error
}

var _ repository.SnapshotRepository = (*LazySnapshotRepository)(nil)

// NewLazySnapshotRepository wraps provider.
func NewLazySnapshotRepository(provider port.DatabaseProvider) *LazySnapshotRepository {
	return &LazySnapshotRepository{provider: provider}
}

func (r *LazySnapshotRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSnapshotRepository(db)
	})
	return r.initErr
}

func (r *LazySnapshotRepository) Save(ctx context.Context, snap *entity.Snapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, snap)
}

func (r *LazySnapshotRepository) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, userID)
}

func (r *LazySnapshotRepository) Delete(ctx context.Context, userID string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, userID)
}

func (r *LazySnapshotRepository) SetCurrentUser(ctx context.Context, userID string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SetCurrentUser(ctx, userID)
}

func (r *LazySnapshotRepository) CurrentUser(ctx context.Context) (string, error) {
	if err := r.init(ctx); err != nil {
		return "", err
	}
	return r.repo.CurrentUser(ctx)
}
