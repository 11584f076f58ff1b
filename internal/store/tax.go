package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/paycort/paycort-admin/internal/dependency"
	gerr "github.com/paycort/paycort-admin/internal/errors"
	"github.com/paycort/paycort-admin/internal/entity"
)

type taxStore struct {
	*MYSQLStore
}

// Taxes returns an object implementing dependency.Taxes interface
func (ms *MYSQLStore) Taxes() dependency.Taxes {
	return &taxStore{
		MYSQLStore: ms,
	}
}

// CreateTax inserts a tax record for an existing user. The user check and the
// insert share one transaction so a concurrent DeleteUser cannot orphan it.
func (ts *taxStore) CreateTax(ctx context.Context, userId string, t *entity.TaxInsert) (string, error) {
	id := uuid.NewString()
	err := ts.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		n, err := QueryCountNamed(ctx, rep.DB(), `SELECT COUNT(*) FROM users WHERE id = :userId`, map[string]any{
			"userId": userId,
		})
		if err != nil {
			return fmt.Errorf("can't check tax owner: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("user %s: %w", userId, gerr.ErrNotFound)
		}

		query := `
		INSERT INTO taxes (id, user_id, amount, category, description, date, status)
		VALUES (:id, :userId, :amount, :category, :description, :date, :status)`
		return ExecNamed(ctx, rep.DB(), query, map[string]any{
			"id":          id,
			"userId":      userId,
			"amount":      t.Amount,
			"category":    t.Category,
			"description": t.Description,
			"date":        t.Date.Format(entity.TaxDateLayout),
			"status":      string(t.Status),
		})
	})
	if err != nil {
		return "", fmt.Errorf("can't create tax record: %w", err)
	}
	return id, nil
}

func (ts *taxStore) GetUserTaxes(ctx context.Context, userId string) ([]entity.Tax, error) {
	query := `SELECT * FROM taxes WHERE user_id = :userId ORDER BY date DESC, created_at DESC`
	taxes, err := QueryListNamed[entity.Tax](ctx, ts.DB(), query, map[string]any{
		"userId": userId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get user taxes: %w", err)
	}
	return taxes, nil
}

// UpdateTax applies the non-nil fields of t and stamps updated_at.
func (ts *taxStore) UpdateTax(ctx context.Context, id string, t *entity.TaxUpdate) error {
	sets := []string{"updated_at = CURRENT_TIMESTAMP(3)"}
	params := map[string]any{"id": id}
	if t.Amount != nil {
		sets = append(sets, "amount = :amount")
		params["amount"] = *t.Amount
	}
	if t.Category != nil {
		sets = append(sets, "category = :category")
		params["category"] = *t.Category
	}
	if t.Description != nil {
		sets = append(sets, "description = :description")
		params["description"] = *t.Description
	}
	if t.Date != nil {
		sets = append(sets, "date = :date")
		params["date"] = t.Date.Format(entity.TaxDateLayout)
	}
	if t.Status != nil {
		sets = append(sets, "status = :status")
		params["status"] = string(*t.Status)
	}

	query := fmt.Sprintf(`UPDATE taxes SET %s WHERE id = :id`, strings.Join(sets, ", "))
	ra, err := ExecNamedRowsAffected(ctx, ts.DB(), query, params)
	if err != nil {
		return fmt.Errorf("can't update tax record: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("tax %s: %w", id, gerr.ErrNotFound)
	}
	return nil
}

func (ts *taxStore) DeleteTax(ctx context.Context, id string) error {
	ra, err := ExecNamedRowsAffected(ctx, ts.DB(), `DELETE FROM taxes WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete tax record: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("tax %s: %w", id, gerr.ErrNotFound)
	}
	return nil
}
