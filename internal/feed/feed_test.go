package feed

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/paycort/paycort-admin/internal/dependency/mocks"
	"github.com/paycort/paycort-admin/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func entry(id string) entity.WaitlistEntry {
	return entity.WaitlistEntry{
		Id:        id,
		FirstName: "first-" + id,
		LastName:  "last-" + id,
		Email:     id + "@example.com",
		CreatedAt: sql.NullTime{Time: time.Now(), Valid: true},
	}
}

type recorder struct {
	mu        sync.Mutex
	snapshots []entity.Snapshot
}

func (r *recorder) on(s entity.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
}

func (r *recorder) all() []entity.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Snapshot(nil), r.snapshots...)
}

func TestFeed_RedeliversFullSetOnChange(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewWaitlist(t)
	f := New(&Config{PollInterval: time.Hour}, repo)

	rec := &recorder{}
	unsubscribe := f.Subscribe(rec.on)
	defer unsubscribe()

	first := []entity.WaitlistEntry{entry("a")}
	repo.On("Version", mock.Anything).Return(int64(1), nil).Once()
	repo.On("ListByCreatedDesc", mock.Anything).Return(first, nil).Once()
	f.refresh(ctx)

	// unchanged counter, nothing is reloaded
	repo.On("Version", mock.Anything).Return(int64(1), nil).Once()
	f.refresh(ctx)

	second := []entity.WaitlistEntry{entry("b"), entry("a")}
	repo.On("Version", mock.Anything).Return(int64(2), nil).Once()
	repo.On("ListByCreatedDesc", mock.Anything).Return(second, nil).Once()
	f.refresh(ctx)

	got := rec.all()
	require.Len(t, got, 2)
	assert.True(t, got[0].Ok())
	assert.Equal(t, first, got[0].Records)
	assert.Equal(t, second, got[1].Records)
}

func TestFeed_ErrorDeliversEmptyFailedSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewWaitlist(t)
	f := New(&Config{PollInterval: time.Hour}, repo)

	rec := &recorder{}
	defer f.Subscribe(rec.on)()

	repo.On("Version", mock.Anything).Return(int64(1), nil).Once()
	repo.On("ListByCreatedDesc", mock.Anything).Return([]entity.WaitlistEntry{entry("a")}, nil).Once()
	f.refresh(ctx)

	repo.On("Version", mock.Anything).Return(int64(0), errors.New("connection refused")).Once()
	f.refresh(ctx)

	// same counter as before the failure, still reloaded
	repo.On("Version", mock.Anything).Return(int64(1), nil).Once()
	repo.On("ListByCreatedDesc", mock.Anything).Return([]entity.WaitlistEntry{entry("a")}, nil).Once()
	f.refresh(ctx)

	got := rec.all()
	require.Len(t, got, 3)
	assert.True(t, got[0].Ok())
	assert.False(t, got[1].Ok())
	assert.Empty(t, got[1].Records)
	assert.True(t, got[2].Ok())
	assert.Len(t, got[2].Records, 1)
}

func TestFeed_SubscribeGetsCurrentSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewWaitlist(t)
	f := New(&Config{PollInterval: time.Hour}, repo)

	_, ok := f.Last()
	assert.False(t, ok)

	repo.On("Version", mock.Anything).Return(int64(3), nil).Once()
	repo.On("ListByCreatedDesc", mock.Anything).Return([]entity.WaitlistEntry{entry("a"), entry("b")}, nil).Once()
	f.refresh(ctx)

	rec := &recorder{}
	unsubscribe := f.Subscribe(rec.on)
	got := rec.all()
	require.Len(t, got, 1)
	assert.Len(t, got[0].Records, 2)

	assert.Equal(t, 1, f.Subscribers())
	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, f.Subscribers())
}

func TestFeed_UnsubscribedGetsNothing(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewWaitlist(t)
	f := New(&Config{PollInterval: time.Hour}, repo)

	rec := &recorder{}
	f.Subscribe(rec.on)()

	repo.On("Version", mock.Anything).Return(int64(1), nil).Once()
	repo.On("ListByCreatedDesc", mock.Anything).Return([]entity.WaitlistEntry{entry("a")}, nil).Once()
	f.refresh(ctx)

	assert.Empty(t, rec.all())
}

func TestFeed_StartStop(t *testing.T) {
	repo := mocks.NewWaitlist(t)
	repo.On("Version", mock.Anything).Return(int64(1), nil).Maybe()
	repo.On("ListByCreatedDesc", mock.Anything).Return([]entity.WaitlistEntry{entry("a")}, nil).Maybe()

	f := New(&Config{PollInterval: 10 * time.Millisecond}, repo)
	rec := &recorder{}
	defer f.Subscribe(rec.on)()

	require.NoError(t, f.Start(context.Background()))
	assert.Error(t, f.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return len(rec.all()) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, f.Stop())
	assert.Error(t, f.Stop())
}
