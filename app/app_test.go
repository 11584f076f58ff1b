package app

import (
	"context"
	"testing"

	"github.com/paycort/paycort-admin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_RequiresPin(t *testing.T) {
	a := New(&config.Config{})
	err := a.Start(context.Background())
	require.Error(t, err)
	assert.Nil(t, a.db)
}

func TestStop_ClosesDone(t *testing.T) {
	a := New(&config.Config{})
	a.Stop(context.Background())
	select {
	case <-a.Done():
	default:
		t.Fatal("done is still open")
	}
	// stopping twice is harmless
	a.Stop(context.Background())
}
