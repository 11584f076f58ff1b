package entity

import (
	"database/sql"
	"time"
)

// WaitlistCollection is the backend collection holding signups.
const WaitlistCollection = "paycortWaitlist"

// WaitlistEntry is a signup delivered by the backend. CreatedAt is null while
// the server timestamp is still pending.
type WaitlistEntry struct {
	Id        string       `db:"id" json:"id"`
	FirstName string       `db:"first_name" json:"firstName"`
	LastName  string       `db:"last_name" json:"lastName"`
	Phone     string       `db:"phone" json:"phone"`
	Email     string       `db:"email" json:"email"`
	CreatedAt sql.NullTime `db:"created_at" json:"-"`
}

// WaitlistEntryInsert is what the signup flow writes.
type WaitlistEntryInsert struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
}

// Created returns the resolved creation time. ok is false while the
// timestamp is pending.
func (e *WaitlistEntry) Created() (t time.Time, ok bool) {
	if !e.CreatedAt.Valid {
		return time.Time{}, false
	}
	return e.CreatedAt.Time, true
}

// Snapshot is one full delivery of the waitlist collection. Err is set when
// the subscription failed, in which case Records is empty.
type Snapshot struct {
	Records []WaitlistEntry
	Err     error
}

// Ok reports whether the snapshot carries records rather than a failure.
func (s Snapshot) Ok() bool {
	return s.Err == nil
}
