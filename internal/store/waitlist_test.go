package store

import (
	"context"
	"testing"

	"github.com/paycort/paycort-admin/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitlist_AddAndList(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlist()
	ctx := context.Background()

	v0, err := ws.Version(ctx)
	require.NoError(t, err)

	first, err := ws.AddEntry(ctx, &entity.WaitlistEntryInsert{
		FirstName: "Ada", LastName: "Lovelace", Phone: "+100", Email: "ada@example.com",
	})
	require.NoError(t, err)
	_, err = db.db.ExecContext(ctx,
		"UPDATE paycort_waitlist SET created_at = NOW(3) - INTERVAL 1 DAY WHERE id = ?", first)
	require.NoError(t, err)

	second, err := ws.AddEntry(ctx, &entity.WaitlistEntryInsert{
		FirstName: "Alan", LastName: "Turing", Phone: "+200", Email: "alan@example.com",
	})
	require.NoError(t, err)

	entries, err := ws.ListByCreatedDesc(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second, entries[0].Id)
	assert.Equal(t, first, entries[1].Id)
	assert.True(t, entries[0].CreatedAt.Valid)

	v1, err := ws.Version(ctx)
	require.NoError(t, err)
	assert.Greater(t, v1, v0)

	ok, err := ws.EmailExists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = ws.EmailExists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWaitlist_PendingTimestampFirst(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlist()
	ctx := context.Background()

	_, err := ws.AddEntry(ctx, &entity.WaitlistEntryInsert{FirstName: "A", LastName: "A", Email: "a@example.com"})
	require.NoError(t, err)
	pending, err := ws.AddEntry(ctx, &entity.WaitlistEntryInsert{FirstName: "B", LastName: "B", Email: "b@example.com"})
	require.NoError(t, err)
	_, err = db.db.ExecContext(ctx, "UPDATE paycort_waitlist SET created_at = NULL WHERE id = ?", pending)
	require.NoError(t, err)

	entries, err := ws.ListByCreatedDesc(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, pending, entries[0].Id)
	_, ok := entries[0].Created()
	assert.False(t, ok)
}
