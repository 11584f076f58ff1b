package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"
)

// Pinger checks the backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor tracks backend reachability and reports online/offline transitions.
// Its state is independent from snapshot failures of the Feed: the backend
// can answer pings while a subscriber still holds a failed snapshot.
type Monitor struct {
	p        Pinger
	interval time.Duration

	mu        sync.Mutex
	online    bool
	listeners map[uint64]func(bool)
	nextId    uint64

	stop context.CancelFunc
}

// NewMonitor creates a monitor that starts in the online state.
func NewMonitor(c *Config, p Pinger) *Monitor {
	interval := 5 * time.Second
	if c != nil && c.PingInterval > 0 {
		interval = c.PingInterval
	}
	return &Monitor{
		p:         p,
		interval:  interval,
		online:    true,
		listeners: make(map[uint64]func(bool)),
	}
}

// Start starts the ping loop.
func (m *Monitor) Start(ctx context.Context) error {
	if m.stop != nil {
		return fmt.Errorf("connectivity monitor already started")
	}
	ctx, m.stop = context.WithCancel(ctx)
	go m.worker(ctx)
	return nil
}

// Stop stops the ping loop.
func (m *Monitor) Stop() error {
	if m.stop == nil {
		return fmt.Errorf("connectivity monitor already stopped or not started")
	}
	m.stop()
	m.stop = nil
	return nil
}

func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Listen registers fn for transitions. The returned function removes it and
// is safe to call more than once.
func (m *Monitor) Listen(fn func(online bool)) func() {
	m.mu.Lock()
	id := m.nextId
	m.nextId++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered listeners.
func (m *Monitor) Listeners() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

func (m *Monitor) worker(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Monitor) check(ctx context.Context) {
	err := m.p.Ping(ctx)
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil {
		slog.Default().WarnContext(ctx, "backend unreachable",
			slog.String("err", err.Error()),
		)
	}
	m.set(err == nil)
}

// set records the state and notifies listeners only on a transition.
func (m *Monitor) set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	ls := make([]func(bool), 0, len(m.listeners))
	for _, fn := range m.listeners {
		ls = append(ls, fn)
	}
	m.mu.Unlock()

	for _, fn := range ls {
		fn(online)
	}
}
