// Package feed keeps a standing subscription to the waitlist collection and
// redelivers the full ordered record set to every subscriber on each change.
package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paycort/paycort-admin/internal/dependency"
	"github.com/paycort/paycort-admin/internal/entity"
)

// Config holds configuration for the feed worker.
type Config struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		PollInterval: time.Second,
		PingInterval: 5 * time.Second,
	}
}

// Feed watches the change counter of the waitlist and pushes full snapshots.
// Records of a delivered snapshot are shared between subscribers and must
// not be modified.
type Feed struct {
	repo dependency.Waitlist
	c    *Config

	// deliverMu orders deliveries so a subscriber never sees an older
	// snapshot after a newer one.
	deliverMu sync.Mutex

	mu      sync.Mutex
	subs    map[uint64]func(entity.Snapshot)
	nextId  uint64
	last    *entity.Snapshot
	version int64

	ctx  context.Context
	stop context.CancelFunc
}

// New creates a new feed over the waitlist repository.
func New(c *Config, repo dependency.Waitlist) *Feed {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.PollInterval == 0 {
		c.PollInterval = time.Second
	}
	return &Feed{
		repo: repo,
		c:    c,
		subs: make(map[uint64]func(entity.Snapshot)),
	}
}

// Start starts the worker.
func (f *Feed) Start(ctx context.Context) error {
	if f.ctx != nil && f.stop != nil {
		return fmt.Errorf("feed already started")
	}
	f.ctx, f.stop = context.WithCancel(ctx)
	go f.worker(f.ctx)
	return nil
}

// Stop stops the worker. Subscribers stay registered but receive nothing more.
func (f *Feed) Stop() error {
	if f.stop == nil {
		return fmt.Errorf("feed already stopped or not started")
	}
	f.stop()
	f.stop = nil
	return nil
}

// Subscribe registers fn. If a snapshot has already been loaded fn receives
// it before Subscribe returns. The returned function deregisters fn, it is
// safe to call more than once.
func (f *Feed) Subscribe(fn func(entity.Snapshot)) func() {
	f.deliverMu.Lock()
	defer f.deliverMu.Unlock()

	f.mu.Lock()
	id := f.nextId
	f.nextId++
	f.subs[id] = fn
	last := f.last
	f.mu.Unlock()

	if last != nil {
		fn(*last)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
}

// Subscribers returns the number of registered subscribers.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Last returns the most recent snapshot, ok is false before the first load.
func (f *Feed) Last() (entity.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.last == nil {
		return entity.Snapshot{}, false
	}
	return *f.last, true
}

func (f *Feed) broadcast(s entity.Snapshot) {
	f.deliverMu.Lock()
	defer f.deliverMu.Unlock()

	f.mu.Lock()
	f.last = &s
	subs := make([]func(entity.Snapshot), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}
