package feed

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	mu  sync.Mutex
	err error
}

func (p *fakePinger) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *fakePinger) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func TestMonitor_ReportsTransitionsOnly(t *testing.T) {
	ctx := context.Background()
	p := &fakePinger{}
	m := NewMonitor(nil, p)
	assert.True(t, m.Online())

	var got []bool
	remove := m.Listen(func(online bool) { got = append(got, online) })

	m.check(ctx)
	assert.Empty(t, got)

	p.fail(errors.New("dial tcp: connection refused"))
	m.check(ctx)
	m.check(ctx)
	assert.Equal(t, []bool{false}, got)
	assert.False(t, m.Online())

	p.fail(nil)
	m.check(ctx)
	assert.Equal(t, []bool{false, true}, got)

	remove()
	remove()
	assert.Equal(t, 0, m.Listeners())

	p.fail(errors.New("down"))
	m.check(ctx)
	assert.Equal(t, []bool{false, true}, got)
}

func TestMonitor_StartStop(t *testing.T) {
	m := NewMonitor(&Config{}, &fakePinger{})
	assert.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Start(context.Background()))
	assert.NoError(t, m.Stop())
	assert.Error(t, m.Stop())
}
