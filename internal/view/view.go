package view

import (
	"sync"
	"time"

	"github.com/paycort/paycort-admin/internal/entity"
)

const notAvailable = "N/A"

// EntryView is one rendered card of the dashboard.
type EntryView struct {
	Position  int        `json:"position"`
	Id        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Initials  string     `json:"initials"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Joined    string     `json:"joined"`
	JoinedAt  *time.Time `json:"joinedAt,omitempty"`
}

// Frame is a full render of a view.
type Frame struct {
	ViewId       string      `json:"viewId"`
	Entries      []EntryView `json:"entries"`
	Showing      int         `json:"showing"`
	TotalMatched int         `json:"totalMatched"`
	Total        int         `json:"total"`
	Empty        bool        `json:"empty"`
	Loading      bool        `json:"loading"`
	Online       bool        `json:"online"`
	Synced       bool        `json:"synced"`
	HasMore      bool        `json:"hasMore"`
	Controls     Controls    `json:"controls"`
	Stats        Stats       `json:"stats"`
}

// View is the state of one live dashboard: its controls and the last
// snapshot it received. Every handler runs to completion under the view lock
// and queues a fresh Frame; only the latest unread frame is kept.
type View struct {
	Id string

	loc *time.Location
	now func() time.Time

	mu       sync.Mutex
	controls Controls
	records  []entity.WaitlistEntry
	loading  bool
	online   bool
	synced   bool
	closed   bool
	teardown []func()

	frames    chan Frame
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a view in the loading state. loc is the viewer's time zone, now
// defaults to time.Now.
func New(id string, loc *time.Location, now func() time.Time) *View {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &View{
		Id:       id,
		loc:      loc,
		now:      now,
		controls: DefaultControls(),
		loading:  true,
		online:   true,
		frames:   make(chan Frame, 1),
		done:     make(chan struct{}),
	}
}

// OnSnapshot replaces the record set. A failed snapshot empties the list and
// flips the view offline.
func (v *View) OnSnapshot(s entity.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	v.synced = s.Ok()
	v.online = s.Ok()
	if s.Ok() {
		v.records = s.Records
	} else {
		v.records = nil
	}
	v.push()
}

// OnConnectivity records a reachability transition.
func (v *View) OnConnectivity(online bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.online = online
	v.push()
}

// Apply changes the controls. Any change of search, date or sort brings the
// visible count back to PageSize.
func (v *View) Apply(u ControlsUpdate) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if u.apply(&v.controls) {
		v.push()
	}
}

// Reveal shows the next page. It reports whether more entries became visible,
// the count never shrinks below a page.
func (v *View) Reveal() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	total := len(Matched(v.records, v.controls, v.clock()))
	n := Reveal(v.controls.VisibleCount, total)
	if n <= v.controls.VisibleCount {
		return false
	}
	v.controls.VisibleCount = n
	v.push()
	return true
}

// RevealTo reveals pages until at least n entries are visible or every
// match is.
func (v *View) RevealTo(n int) {
	for v.Controls().VisibleCount < n && v.Reveal() {
	}
}

// OnScroll reveals the next page when p is near the bottom of the content.
func (v *View) OnScroll(p ScrollPosition) bool {
	if !p.NearBottom(RevealThreshold) {
		return false
	}
	return v.Reveal()
}

// Controls returns the current controls.
func (v *View) Controls() Controls {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.controls
}

// Frame renders the view.
func (v *View) Frame() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frame()
}

// Export returns everything matching the active filters in display order,
// regardless of how much has been revealed.
func (v *View) Export() []entity.WaitlistEntry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Matched(v.records, v.controls, v.clock())
}

// Loading reports whether the view still waits for its first snapshot.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Location is the viewer's time zone.
func (v *View) Location() *time.Location {
	return v.loc
}

// Frames delivers a frame after each change.
func (v *View) Frames() <-chan Frame {
	return v.frames
}

// Done is closed once the view is closed.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// OnClose registers fn to run when the view closes. On a closed view fn runs
// right away.
func (v *View) OnClose(fn func()) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		fn()
		return
	}
	v.teardown = append(v.teardown, fn)
	v.mu.Unlock()
}

// Close runs the registered teardown functions once.
func (v *View) Close() {
	v.closeOnce.Do(func() {
		v.mu.Lock()
		v.closed = true
		fns := v.teardown
		v.teardown = nil
		v.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
		close(v.done)
	})
}

func (v *View) clock() time.Time {
	return v.now().In(v.loc)
}

// push queues the current frame, replacing an unread one. Callers hold mu.
func (v *View) push() {
	f := v.frame()
	select {
	case v.frames <- f:
		return
	default:
	}
	select {
	case <-v.frames:
	default:
	}
	select {
	case v.frames <- f:
	default:
	}
}

func (v *View) frame() Frame {
	now := v.clock()
	res := Compute(v.records, v.controls, now)
	entries := make([]EntryView, 0, len(res.Visible))
	for i := range res.Visible {
		entries = append(entries, renderEntry(i+1, &res.Visible[i], v.loc))
	}
	empty := !v.loading && res.Empty
	controls := v.controls
	if empty {
		// nothing to reveal, the held count comes back once something matches
		controls.VisibleCount = 0
	}
	return Frame{
		ViewId:       v.Id,
		Entries:      entries,
		Showing:      len(entries),
		TotalMatched: res.TotalMatched,
		Total:        len(v.records),
		Empty:        empty,
		Loading:      v.loading,
		Online:       v.online,
		Synced:       v.synced,
		HasMore:      len(entries) < res.TotalMatched,
		Controls:     controls,
		Stats:        ComputeStats(v.records, now),
	}
}

func renderEntry(pos int, e *entity.WaitlistEntry, loc *time.Location) EntryView {
	ev := EntryView{
		Position:  pos,
		Id:        e.Id,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Initials:  initial(e.FirstName) + initial(e.LastName),
		Email:     e.Email,
		Phone:     e.Phone,
		Joined:    notAvailable,
	}
	if t, ok := e.Created(); ok {
		t = t.In(loc)
		ev.Joined = t.Format("Jan 2, 03:04 PM")
		ev.JoinedAt = &t
	}
	return ev
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
