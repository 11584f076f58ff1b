package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(window time.Duration, max int) (*Limiter, *clock) {
	c := &clock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(window, max)
	l.now = c.Now
	return l, c
}

func TestLimiter_Allow(t *testing.T) {
	limiter, c := newTestLimiter(time.Second, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("test-key"), "request %d", i+1)
	}
	assert.False(t, limiter.Allow("test-key"))
	assert.True(t, limiter.Allow("other-key"))

	c.Advance(1100 * time.Millisecond)
	assert.True(t, limiter.Allow("test-key"))
}

func TestLimiter_GetRemaining(t *testing.T) {
	limiter, _ := newTestLimiter(time.Second, 5)

	assert.Equal(t, 5, limiter.GetRemaining("test-key"))
	limiter.Allow("test-key")
	limiter.Allow("test-key")
	assert.Equal(t, 3, limiter.GetRemaining("test-key"))
}

func TestLimiter_Sweep(t *testing.T) {
	limiter, c := newTestLimiter(time.Second, 1)
	limiter.Allow("a")
	limiter.Allow("b")
	c.Advance(500 * time.Millisecond)
	limiter.Allow("c")
	c.Advance(600 * time.Millisecond)

	limiter.sweep()
	assert.Equal(t, 1, limiter.size())
}

func TestLimiter_StartStops(t *testing.T) {
	limiter := NewLimiter(10*time.Millisecond, 1)
	ctx, cancel := context.WithCancel(context.Background())
	limiter.Start(ctx)
	limiter.Allow("a")
	assert.Eventually(t, func() bool { return limiter.size() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
}

func TestMultiKeyLimiter(t *testing.T) {
	m := NewMultiKeyLimiter(&Config{StreamPerMinute: 2, ArchivePerMinute: 1})

	assert.NoError(t, m.CheckStream("192.168.1.1"))
	assert.NoError(t, m.CheckStream("192.168.1.1"))
	assert.Error(t, m.CheckStream("192.168.1.1"))
	assert.NoError(t, m.CheckStream("192.168.1.2"))

	assert.NoError(t, m.CheckArchive("192.168.1.1"))
	assert.Error(t, m.CheckArchive("192.168.1.1"))
}
