// Package snapshot autosaves the live session to the local cache while an
// interactive command runs.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/atlas/internal/logging"
)

// DefaultInterval is the quiet period before a dirty session is written.
const DefaultInterval = 5 * time.Second

// Persister writes the current state to durable storage.
// *usecase.Session satisfies it.
type Persister interface {
	Persist(ctx context.Context) error
}

// Service handles debounced session snapshots.
type Service struct {
	target   Persister
	interval time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a snapshot service. A non-positive interval selects
// DefaultInterval.
func NewService(target Persister, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		target:   target,
		interval: interval,
	}
}

// Start enables timed saves. MarkDirty before Start only records the change.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop cancels the timer and writes any pending change.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that state has changed and restarts the quiet period.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	if s.ctx == nil || s.ctx.Err() != nil {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	ctx := s.ctx
	s.timer = time.AfterFunc(s.interval, func() {
		if ctx.Err() != nil {
			return
		}
		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to autosave session")
		}
	})
}

// SaveNow writes a pending change immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.save(ctx)
}

// Dirty reports whether a change is waiting to be written.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	s.mu.Unlock()

	if err := s.target.Persist(ctx); err != nil {
		// Keep the change pending so the next save retries it.
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	logging.FromContext(ctx).Debug().Msg("session autosaved")
	return nil
}
