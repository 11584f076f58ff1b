package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/paycort/paycort-admin/internal/entity"
	gerr "github.com/paycort/paycort-admin/internal/errors"
	"github.com/shopspring/decimal"
)

// Tax is the wire form of a tax record. Amount is a decimal string and Date
// a calendar date.
type Tax struct {
	Id          string `json:"id"`
	UserId      string `json:"userId"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// TaxInsert is the body of a tax creation.
type TaxInsert struct {
	Amount      string `json:"amount" valid:"required"`
	Category    string `json:"category" valid:"required"`
	Description string `json:"description"`
	Date        string `json:"date" valid:"required"`
	Status      string `json:"status"`
}

// TaxUpdate is the body of a partial tax update.
type TaxUpdate struct {
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ConvertTaxInsertToEntity parses the wire fields. An empty status is pending.
func ConvertTaxInsertToEntity(t *TaxInsert) (*entity.TaxInsert, error) {
	amount, err := parseAmount(t.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseTaxDate(t.Date)
	if err != nil {
		return nil, err
	}
	status := entity.TaxStatusPending
	if t.Status != "" {
		if status, err = parseTaxStatus(t.Status); err != nil {
			return nil, err
		}
	}
	return &entity.TaxInsert{
		Amount:      amount,
		Category:    strings.TrimSpace(t.Category),
		Description: t.Description,
		Date:        date,
		Status:      status,
	}, nil
}

// ConvertTaxUpdateToEntity parses the fields that are set.
func ConvertTaxUpdateToEntity(t *TaxUpdate) (*entity.TaxUpdate, error) {
	u := &entity.TaxUpdate{
		Category:    t.Category,
		Description: t.Description,
	}
	if t.Amount != nil {
		amount, err := parseAmount(*t.Amount)
		if err != nil {
			return nil, err
		}
		u.Amount = &amount
	}
	if t.Date != nil {
		date, err := parseTaxDate(*t.Date)
		if err != nil {
			return nil, err
		}
		u.Date = &date
	}
	if t.Status != nil {
		status, err := parseTaxStatus(*t.Status)
		if err != nil {
			return nil, err
		}
		u.Status = &status
	}
	if u.Empty() {
		return nil, fmt.Errorf("nothing to update: %w", gerr.ErrInvalidArgument)
	}
	return u, nil
}

// ConvertEntityTaxToDto formats a tax record for the wire.
func ConvertEntityTaxToDto(t *entity.Tax) Tax {
	return Tax{
		Id:          t.Id,
		UserId:      t.UserId,
		Amount:      t.Amount.StringFixed(2),
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format(entity.TaxDateLayout),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, gerr.ErrInvalidArgument)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative: %w", gerr.ErrInvalidArgument)
	}
	return amount, nil
}

func parseTaxDate(s string) (time.Time, error) {
	d, err := time.Parse(entity.TaxDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, gerr.ErrInvalidArgument)
	}
	return d, nil
}

func parseTaxStatus(s string) (entity.TaxStatus, error) {
	if !entity.IsValidTaxStatus(s) {
		return "", fmt.Errorf("status %q: %w", s, gerr.ErrInvalidArgument)
	}
	return entity.TaxStatus(s), nil
}
