package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paycort/paycort-admin/internal/dependency"
	"github.com/paycort/paycort-admin/internal/entity"
)

type waitlistStore struct {
	*MYSQLStore
}

// Waitlist returns an object implementing dependency.Waitlist interface
func (ms *MYSQLStore) Waitlist() dependency.Waitlist {
	return &waitlistStore{
		MYSQLStore: ms,
	}
}

// AddEntry inserts a signup. created_at is assigned by the database.
func (ws *waitlistStore) AddEntry(ctx context.Context, e *entity.WaitlistEntryInsert) (string, error) {
	id := uuid.NewString()
	query := `
	INSERT INTO paycort_waitlist (id, first_name, last_name, phone, email)
	VALUES (:id, :firstName, :lastName, :phone, :email)`
	err := ExecNamed(ctx, ws.DB(), query, map[string]any{
		"id":        id,
		"firstName": e.FirstName,
		"lastName":  e.LastName,
		"phone":     e.Phone,
		"email":     e.Email,
	})
	if err != nil {
		return "", fmt.Errorf("failed to add to waitlist: %w", err)
	}
	return id, nil
}

// ListByCreatedDesc returns the whole collection newest first. Entries with a
// pending timestamp are the most recent writes and lead the list.
func (ws *waitlistStore) ListByCreatedDesc(ctx context.Context) ([]entity.WaitlistEntry, error) {
	query := `
	SELECT id, first_name, last_name, phone, email, created_at
	FROM paycort_waitlist
	ORDER BY created_at IS NULL DESC, created_at DESC, id DESC`
	entries, err := QueryListNamed[entity.WaitlistEntry](ctx, ws.DB(), query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get waitlist: %w", err)
	}
	return entries, nil
}

// EmailExists reports whether the email is already on the waitlist.
func (ws *waitlistStore) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM paycort_waitlist WHERE email = :email`
	n, err := QueryCountNamed(ctx, ws.DB(), query, map[string]any{
		"email": email,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return n > 0, nil
}

// Version returns the change counter of the waitlist collection. Triggers on
// paycort_waitlist bump it on every insert, update and delete.
func (ws *waitlistStore) Version(ctx context.Context) (int64, error) {
	query := `SELECT version FROM collection_versions WHERE name = :name`
	v, err := QueryCountNamed(ctx, ws.DB(), query, map[string]any{
		"name": entity.WaitlistCollection,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get waitlist version: %w", err)
	}
	return v, nil
}
