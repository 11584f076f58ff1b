package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGate(t *testing.T, delay time.Duration) *Gate {
	t.Helper()
	c := DefaultConfig()
	c.AdminPin = "1234"
	c.JWTSecret = "hehe"
	c.SubmitDelay = delay
	g, err := New(c)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	_, err := New(&Config{JWTSecret: "s", JWTTTL: "0"})
	assert.Error(t, err)
	_, err = New(&Config{AdminPin: "1234", JWTTTL: "0"})
	assert.Error(t, err)
	_, err = New(&Config{AdminPin: "1234", JWTSecret: "s", JWTTTL: "forever"})
	assert.Error(t, err)

	g, err := New(&Config{AdminPin: "1234", JWTSecret: "s", JWTTTL: "12h"})
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, g.TTL())
}

func TestSubmit_Match(t *testing.T) {
	g := testGate(t, 20*time.Millisecond)

	start := time.Now()
	res, err := g.Submit(context.Background(), "1234")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.True(t, res.Authenticated)
	assert.Equal(t, DashboardPath, res.Redirect)
	assert.Empty(t, res.Message)
	require.NotEmpty(t, res.Token)

	s, err := g.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", s.Subject)
}

func TestSubmit_Mismatch(t *testing.T) {
	g := testGate(t, 20*time.Millisecond)

	start := time.Now()
	res, err := g.Submit(context.Background(), "0000")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.False(t, res.Authenticated)
	assert.Equal(t, MessageIncorrect, res.Message)
	assert.Empty(t, res.Token)
}

func TestSubmit_Malformed(t *testing.T) {
	g := testGate(t, 0)
	for _, pin := range []string{"", "123", "12345", "12a4", " 1234"} {
		res, err := g.Submit(context.Background(), pin)
		require.NoError(t, err)
		assert.False(t, res.Authenticated, pin)
	}
}

func TestSubmit_ContextCancelled(t *testing.T) {
	g := testGate(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Submit(ctx, "1234")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmitPad(t *testing.T) {
	g := testGate(t, 0)

	p := &PinPad{}
	for i, d := range []string{"0", "0", "0", "0"} {
		p.Enter(i, d)
	}
	res, err := g.SubmitPad(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, res.Authenticated)
	assert.Equal(t, MessageIncorrect, res.Message)
	assert.Equal(t, [PinLength]string{}, p.Slots())
	assert.Equal(t, 0, p.Focus())

	for i, d := range []string{"1", "2", "3", "4"} {
		p.Enter(i, d)
	}
	res, err = g.SubmitPad(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, res.Authenticated)
	assert.Equal(t, "1234", p.Value())
}

func TestVerify_Rejects(t *testing.T) {
	g := testGate(t, 0)
	_, err := g.Verify("bad token")
	assert.Error(t, err)

	res, err := g.Submit(context.Background(), "1234")
	require.NoError(t, err)

	c := DefaultConfig()
	c.AdminPin = "1234"
	c.JWTSecret = "different"
	g2, err := New(c)
	require.NoError(t, err)
	_, err = g2.Verify(res.Token)
	assert.Error(t, err)
}
