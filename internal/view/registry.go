package view

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paycort/paycort-admin/internal/dependency"
	"github.com/paycort/paycort-admin/internal/entity"
)

// Registry keeps the open views. Opening a view subscribes it to the feed
// and to connectivity transitions, closing it removes both.
type Registry struct {
	feed dependency.Feed
	conn dependency.Connectivity
	now  func() time.Time

	mu    sync.Mutex
	views map[string]*View
}

// NewRegistry creates a registry. now defaults to time.Now.
func NewRegistry(feed dependency.Feed, conn dependency.Connectivity, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		feed:  feed,
		conn:  conn,
		now:   now,
		views: make(map[string]*View),
	}
}

// Open creates a live view for a viewer in loc.
func (r *Registry) Open(loc *time.Location) *View {
	v := New(uuid.NewString(), loc, r.now)
	if r.conn != nil {
		v.OnConnectivity(r.conn.Online())
	}

	r.mu.Lock()
	r.views[v.Id] = v
	r.mu.Unlock()

	if r.conn != nil {
		v.OnClose(r.conn.Listen(v.OnConnectivity))
	}
	v.OnClose(r.feed.Subscribe(v.OnSnapshot))
	v.OnClose(func() {
		r.mu.Lock()
		delete(r.views, v.Id)
		r.mu.Unlock()
	})
	return v
}

// Get returns an open view.
func (r *Registry) Get(id string) (*View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	return v, ok
}

// Close closes the view with the id, if open.
func (r *Registry) Close(id string) {
	if v, ok := r.Get(id); ok {
		v.Close()
	}
}

// CloseAll closes every open view.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	views := make([]*View, 0, len(r.views))
	for _, v := range r.views {
		views = append(views, v)
	}
	r.mu.Unlock()
	for _, v := range views {
		v.Close()
	}
}

// Len returns the number of open views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Current returns the snapshot the feed holds right now, ok is false while
// the feed has not loaded yet.
func Current(feed dependency.Feed) (entity.Snapshot, bool) {
	var (
		mu sync.Mutex
		s  entity.Snapshot
		ok bool
	)
	unsubscribe := feed.Subscribe(func(got entity.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		if !ok {
			s, ok = got, true
		}
	})
	unsubscribe()
	mu.Lock()
	defer mu.Unlock()
	return s, ok
}
