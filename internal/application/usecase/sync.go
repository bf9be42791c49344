package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/logging"
)

const (
	// DefaultSyncDebounce is the quiet period before a collection is pushed.
	DefaultSyncDebounce = time.Second

	// DefaultHistoryQueueSize is the buffer size for the ordered history queue.
	// If the queue is full, new operations are dropped with a warning.
	DefaultHistoryQueueSize = 100
)

// ErrHistoryQueueFull is recorded as the history error when an operation was dropped.
var ErrHistoryQueueFull = errors.New("history sync queue full")

// SyncEntity names one independently synchronized collection.
type SyncEntity int

const (
	SyncTabs SyncEntity = iota
	SyncBookmarks
	SyncShortcuts
	SyncSettings
	SyncHistory
)

// SyncEntities lists every entity in display order.
var SyncEntities = []SyncEntity{SyncTabs, SyncBookmarks, SyncShortcuts, SyncSettings, SyncHistory}

// String returns a human-readable representation of the entity.
func (e SyncEntity) String() string {
	switch e {
	case SyncTabs:
		return "tabs"
	case SyncBookmarks:
		return "bookmarks"
	case SyncShortcuts:
		return "shortcuts"
	case SyncSettings:
		return "settings"
	case SyncHistory:
		return "history"
	default:
		return "unknown"
	}
}

// SyncPayload is an immutable copy of state headed for the remote store.
// The set of variants is closed; each knows its entity and the call that sends it.
type SyncPayload interface {
	Entity() SyncEntity
	send(ctx context.Context, remote port.RemoteStore, userID string) error
}

// TabsPayload replaces the remote tab collection.
type TabsPayload struct{ Tabs []entity.Tab }

// BookmarksPayload replaces the remote bookmark collection.
type BookmarksPayload struct{ Bookmarks []entity.Bookmark }

// ShortcutsPayload replaces the remote shortcut collection.
type ShortcutsPayload struct{ Shortcuts []entity.Shortcut }

// SettingsPayload replaces the remote settings document.
type SettingsPayload struct{ Settings entity.Settings }

// AppendHistoryPayload pushes one entry to the front of the remote history.
type AppendHistoryPayload struct{ Entry entity.HistoryEntry }

// ClearHistoryPayload removes every remote history entry.
type ClearHistoryPayload struct{}

// DeleteHistoryPayload removes one remote history entry.
type DeleteHistoryPayload struct{ EntryID int64 }

func (TabsPayload) Entity() SyncEntity          { return SyncTabs }
func (BookmarksPayload) Entity() SyncEntity     { return SyncBookmarks }
func (ShortcutsPayload) Entity() SyncEntity     { return SyncShortcuts }
func (SettingsPayload) Entity() SyncEntity      { return SyncSettings }
func (AppendHistoryPayload) Entity() SyncEntity { return SyncHistory }
func (ClearHistoryPayload) Entity() SyncEntity  { return SyncHistory }
func (DeleteHistoryPayload) Entity() SyncEntity { return SyncHistory }

func (p TabsPayload) send(ctx context.Context, remote port.RemoteStore, userID string) error {
	return remote.ReplaceTabs(ctx, userID, p.Tabs)
}

func (p BookmarksPayload) send(ctx context.Context, remote port.RemoteStore, userID string) error {
	return remote.ReplaceBookmarks(ctx, userID, p.Bookmarks)
}

func (p ShortcutsPayload) send(ctx context.Context, remote port.RemoteStore, userID string) error {
	return remote.ReplaceShortcuts(ctx, userID, p.Shortcuts)
}

func (p SettingsPayload) send(ctx context.Context, remote port.RemoteStore, userID string) error {
	return remote.ReplaceSettings(ctx, userID, p.Settings)
}

func (p AppendHistoryPayload) send(ctx context.Context, remote port.RemoteStore, userID string) error {
	return remote.AppendHistory(ctx, userID, p.Entry)
}

func (ClearHistoryPayload) send(ctx context.Context, remote port.RemoteStore, userID string) error {
	return remote.ClearHistory(ctx, userID)
}

func (p DeleteHistoryPayload) send(ctx context.Context, remote port.RemoteStore, userID string) error {
	return remote.DeleteHistory(ctx, userID, p.EntryID)
}

// SyncConfig tunes the orchestrator. Zero values select the defaults.
type SyncConfig struct {
	Debounce         time.Duration
	HistoryQueueSize int
}

type pendingSync struct {
	timer   *time.Timer
	payload SyncPayload
}

// SyncOrchestrator mirrors local mutations to the remote store without
// blocking the caller. Collection payloads are debounced per entity and sent
// as full replacements; history operations skip the debounce and go through a
// single ordered worker. Failures are logged and kept as a sticky per-entity
// error until the next success for that entity. Nothing is retried.
type SyncOrchestrator struct {
	remote   port.RemoteStore
	userID   string
	debounce time.Duration

	mu        sync.Mutex
	idle      chan struct{} // closed while inflight is zero
	pending   map[SyncEntity]*pendingSync
	errs      map[SyncEntity]error
	inflight  int
	cancelled bool

	// Async history dispatch
	historyQueue chan SyncPayload
	done         chan struct{}
	workerWG     sync.WaitGroup
	cancelOnce   sync.Once

	ctx    context.Context // Base context for dispatches, cancelled on logout
	cancel context.CancelFunc
}

// NewSyncOrchestrator creates an orchestrator bound to one user identity.
// An empty userID or nil remote yields an orchestrator that never dispatches.
// ctx supplies the logger; its cancellation also stops dispatching.
func NewSyncOrchestrator(ctx context.Context, remote port.RemoteStore, userID string, cfg SyncConfig) *SyncOrchestrator {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultSyncDebounce
	}
	if cfg.HistoryQueueSize <= 0 {
		cfg.HistoryQueueSize = DefaultHistoryQueueSize
	}

	baseCtx, cancel := context.WithCancel(logging.WithComponent(ctx, "sync"))
	o := &SyncOrchestrator{
		remote:       remote,
		userID:       userID,
		debounce:     cfg.Debounce,
		pending:      make(map[SyncEntity]*pendingSync),
		errs:         make(map[SyncEntity]error),
		historyQueue: make(chan SyncPayload, cfg.HistoryQueueSize),
		done:         make(chan struct{}),
		ctx:          baseCtx,
		cancel:       cancel,
	}
	o.idle = make(chan struct{})
	close(o.idle)

	if o.enabled() {
		o.workerWG.Add(1)
		go o.historyWorker()
	}

	return o
}

func (o *SyncOrchestrator) enabled() bool {
	return o.userID != "" && o.remote != nil
}

// UserID returns the identity this orchestrator dispatches for.
func (o *SyncOrchestrator) UserID() string {
	return o.userID
}

// Schedule queues a payload. Collection payloads replace any pending payload
// of the same entity and restart its debounce timer. History payloads are
// enqueued for immediate ordered dispatch. Never blocks.
func (o *SyncOrchestrator) Schedule(p SyncPayload) {
	if p == nil || !o.enabled() {
		return
	}
	if p.Entity() == SyncHistory {
		o.enqueueHistory(p)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancelled {
		return
	}

	e := p.Entity()
	if prev, ok := o.pending[e]; ok {
		prev.timer.Stop()
	}
	ps := &pendingSync{payload: p}
	ps.timer = time.AfterFunc(o.debounce, func() { o.fire(e, ps) })
	o.pending[e] = ps

	logging.FromContext(o.ctx).Debug().
		Str("entity", e.String()).
		Dur("debounce", o.debounce).
		Msg("sync scheduled")
}

// AddHistory dispatches a new history entry immediately.
func (o *SyncOrchestrator) AddHistory(entry entity.HistoryEntry) {
	o.Schedule(AppendHistoryPayload{Entry: entry})
}

// ClearHistory dispatches a history wipe immediately.
func (o *SyncOrchestrator) ClearHistory() {
	o.Schedule(ClearHistoryPayload{})
}

// DeleteHistory dispatches a single history removal immediately.
func (o *SyncOrchestrator) DeleteHistory(entryID int64) {
	o.Schedule(DeleteHistoryPayload{EntryID: entryID})
}

func (o *SyncOrchestrator) enqueueHistory(p SyncPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancelled {
		return
	}

	// Non-blocking send; the worker decrements inflight under the same lock.
	select {
	case o.historyQueue <- p:
		o.acquireLocked(1)
	default:
		o.errs[SyncHistory] = ErrHistoryQueueFull
		logging.FromContext(o.ctx).Warn().
			Str("entity", SyncHistory.String()).
			Msg("history sync queue full, dropping operation")
	}
}

// historyWorker sends history operations one at a time, in enqueue order.
func (o *SyncOrchestrator) historyWorker() {
	defer o.workerWG.Done()

	log := logging.FromContext(o.ctx).With().
		Str("worker", "history").
		Logger()

	for {
		select {
		case p := <-o.historyQueue:
			o.dispatch(p)
			o.release()
		case <-o.done:
			dropped := 0
			for {
				select {
				case <-o.historyQueue:
					dropped++
					o.release()
				default:
					log.Debug().Int("dropped", dropped).Msg("history worker shutdown complete")
					return
				}
			}
		}
	}
}

// fire runs on the timer goroutine. A superseded or cancelled timer is ignored.
func (o *SyncOrchestrator) fire(e SyncEntity, ps *pendingSync) {
	o.mu.Lock()
	if o.cancelled || o.pending[e] != ps {
		o.mu.Unlock()
		return
	}
	delete(o.pending, e)
	o.acquireLocked(1)
	o.mu.Unlock()

	o.dispatch(ps.payload)
	o.release()
}

func (o *SyncOrchestrator) acquireLocked(n int) {
	if n <= 0 {
		return
	}
	if o.inflight == 0 {
		o.idle = make(chan struct{})
	}
	o.inflight += n
}

func (o *SyncOrchestrator) release() {
	o.mu.Lock()
	o.inflight--
	if o.inflight == 0 {
		close(o.idle)
	}
	o.mu.Unlock()
}

func (o *SyncOrchestrator) dispatch(p SyncPayload) {
	e := p.Entity()
	err := p.send(o.ctx, o.remote, o.userID)

	o.mu.Lock()
	defer o.mu.Unlock()

	// Results arriving after logout belong to the previous identity.
	if o.cancelled {
		return
	}

	log := logging.FromContext(o.ctx)
	if err != nil {
		o.errs[e] = fmt.Errorf("failed to sync %s: %w", e, err)
		log.Error().Err(err).Str("entity", e.String()).Msg("sync failed")
		return
	}
	delete(o.errs, e)
	log.Debug().Str("entity", e.String()).Msg("sync complete")
}

// LastError returns the most recent unresolved failure for an entity.
func (o *SyncOrchestrator) LastError(e SyncEntity) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errs[e]
}

// Pending reports whether a debounced payload for e is waiting to fire.
func (o *SyncOrchestrator) Pending(e SyncEntity) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.pending[e]
	return ok
}

// Wait blocks until no dispatch is running and the history queue is empty.
// Debounced payloads that have not fired yet are not waited for.
func (o *SyncOrchestrator) Wait() {
	_ = o.waitIdle(context.Background())
}

// waitIdle returns once inflight drops to zero or ctx ends. Nothing is left
// blocked when ctx wins.
func (o *SyncOrchestrator) waitIdle(ctx context.Context) error {
	for {
		o.mu.Lock()
		if o.inflight == 0 {
			o.mu.Unlock()
			return nil
		}
		idle := o.idle
		o.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Flush fires every pending debounced payload now and waits for all
// in-flight work, or for ctx to end.
func (o *SyncOrchestrator) Flush(ctx context.Context) error {
	o.mu.Lock()
	if o.cancelled {
		o.mu.Unlock()
		return nil
	}
	due := make([]SyncPayload, 0, len(o.pending))
	for _, e := range SyncEntities {
		ps, ok := o.pending[e]
		if !ok {
			continue
		}
		ps.timer.Stop()
		delete(o.pending, e)
		due = append(due, ps.payload)
	}
	o.acquireLocked(len(due))
	o.mu.Unlock()

	for _, p := range due {
		go func(p SyncPayload) {
			o.dispatch(p)
			o.release()
		}(p)
	}

	if err := o.waitIdle(ctx); err != nil {
		return fmt.Errorf("failed to flush sync: %w", err)
	}
	return nil
}

// Cancel stops all timers, aborts in-flight calls and discards their results.
// Used on logout; the orchestrator is unusable afterwards.
func (o *SyncOrchestrator) Cancel() {
	o.cancelOnce.Do(func() {
		o.mu.Lock()
		o.cancelled = true
		for e, ps := range o.pending {
			ps.timer.Stop()
			delete(o.pending, e)
		}
		o.mu.Unlock()

		o.cancel()
		close(o.done)
		o.workerWG.Wait()

		logging.FromContext(o.ctx).Debug().Msg("sync cancelled")
	})
}

// Close flushes pending work and then shuts the orchestrator down.
func (o *SyncOrchestrator) Close(ctx context.Context) error {
	err := o.Flush(ctx)
	o.Cancel()
	return err
}
