package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
	}
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, exists := l.counters[key]
	if !exists || l.now().After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Start removes expired counters every window until ctx is done.
func (l *Limiter) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(l.window)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.sweep()
			}
		}
	}()
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, c := range l.counters {
		if now.After(c.expiresAt) {
			delete(l.counters, key)
		}
	}
}

func (l *Limiter) size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.counters)
}

// Config holds per-minute limits for the expensive admin operations.
type Config struct {
	StreamPerMinute  int `mapstructure:"stream_limit_per_minute"`
	ArchivePerMinute int `mapstructure:"archive_limit_per_minute"`
}

// DefaultConfig returns the default limits.
func DefaultConfig() *Config {
	return &Config{
		StreamPerMinute:  30,
		ArchivePerMinute: 5,
	}
}

// MultiKeyLimiter manages multiple rate limiters for different types of operations
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
}

const (
	ipStream  = "ip_stream"
	ipArchive = "ip_archive"
)

// NewMultiKeyLimiter creates a limiter with the limits of c.
func NewMultiKeyLimiter(c *Config) *MultiKeyLimiter {
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			ipStream:  NewLimiter(time.Minute, c.StreamPerMinute),
			ipArchive: NewLimiter(time.Minute, c.ArchivePerMinute),
		},
	}
}

// Start runs the cleanup of every limiter until ctx is done.
func (m *MultiKeyLimiter) Start(ctx context.Context) {
	for _, l := range m.limiters {
		l.Start(ctx)
	}
}

// CheckStream verifies if a live view may be opened from the given IP
func (m *MultiKeyLimiter) CheckStream(ip string) error {
	if !m.limiters[ipStream].Allow(ip) {
		return fmt.Errorf("too many live views opened from this IP address, please try again later")
	}
	return nil
}

// CheckArchive verifies if an export may be archived from the given IP
func (m *MultiKeyLimiter) CheckArchive(ip string) error {
	if !m.limiters[ipArchive].Allow(ip) {
		return fmt.Errorf("too many archived exports from this IP address, please try again later")
	}
	return nil
}
