package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	v "github.com/asaskevich/govalidator"
	"github.com/paycort/paycort-admin/internal/entity"
	gerr "github.com/paycort/paycort-admin/internal/errors"
	"github.com/paycort/paycort-admin/internal/view"
)

const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// ViewQuery is the view state a client can pass on the query string:
// q, date (all|today|week), sort (newest|oldest), count and tz.
type ViewQuery struct {
	Update   view.ControlsUpdate
	Count    int
	Location *time.Location
}

// ParseViewQuery reads a ViewQuery. A missing tz is UTC and a missing count
// is one page.
func ParseViewQuery(q url.Values) (*ViewQuery, error) {
	vq := &ViewQuery{
		Count:    view.PageSize,
		Location: time.UTC,
	}
	if q.Has("q") {
		s := q.Get("q")
		vq.Update.Search = &s
	}
	if d := q.Get("date"); d != "" {
		f, err := view.ParseDateFilter(d)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, gerr.ErrInvalidArgument)
		}
		vq.Update.Date = &f
	}
	switch s := q.Get("sort"); s {
	case "":
	case SortNewest, SortOldest:
		newest := s == SortNewest
		vq.Update.NewestFirst = &newest
	default:
		return nil, fmt.Errorf("unknown sort %q: %w", s, gerr.ErrInvalidArgument)
	}
	if c := q.Get("count"); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("count %q: %w", c, gerr.ErrInvalidArgument)
		}
		vq.Count = n
	}
	if tz := q.Get("tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("tz %q: %w", tz, gerr.ErrInvalidArgument)
		}
		vq.Location = loc
	}
	return vq, nil
}

// ValidateControlsUpdate rejects unknown date filters in a JSON update, an
// empty one is DateAll.
func ValidateControlsUpdate(u *view.ControlsUpdate) error {
	if u.Date == nil {
		return nil
	}
	f, err := view.ParseDateFilter(string(*u.Date))
	if err != nil {
		return fmt.Errorf("%v: %w", err, gerr.ErrInvalidArgument)
	}
	*u.Date = f
	return nil
}

// WaitlistSignup is one signup as the signup form submits it.
type WaitlistSignup struct {
	FirstName string `json:"firstName" valid:"required"`
	LastName  string `json:"lastName" valid:"required"`
	Phone     string `json:"phone" valid:"required"`
	Email     string `json:"email" valid:"required,email"`
}

// ConvertWaitlistSignupToEntity trims and validates a signup.
func ConvertWaitlistSignupToEntity(s *WaitlistSignup) (*entity.WaitlistEntryInsert, error) {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)
	if _, err := v.ValidateStruct(s); err != nil {
		return nil, fmt.Errorf("%v: %w", err, gerr.ErrInvalidArgument)
	}
	return &entity.WaitlistEntryInsert{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Phone:     s.Phone,
		Email:     s.Email,
	}, nil
}
