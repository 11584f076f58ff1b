package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type TaxStatus string

const (
	TaxStatusPending TaxStatus = "pending"
	TaxStatusPaid    TaxStatus = "paid"
	TaxStatusOverdue TaxStatus = "overdue"
)

var validTaxStatuses = map[TaxStatus]bool{
	TaxStatusPending: true,
	TaxStatusPaid:    true,
	TaxStatusOverdue: true,
}

func IsValidTaxStatus(s string) bool {
	return validTaxStatuses[TaxStatus(s)]
}

// TaxDateLayout is the layout of Tax.Date on the wire.
const TaxDateLayout = "2006-01-02"

// Tax is a record of the taxes collection, owned by a user.
type Tax struct {
	Id          string          `db:"id" json:"id"`
	UserId      string          `db:"user_id" json:"userId"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Category    string          `db:"category" json:"category"`
	Description string          `db:"description" json:"description"`
	Date        time.Time       `db:"date" json:"date"`
	Status      TaxStatus       `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   sql.NullTime    `db:"updated_at" json:"-"`
}

type TaxInsert struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Status      TaxStatus       `json:"status"`
}

// TaxUpdate is a partial update, nil fields are left untouched.
type TaxUpdate struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
	Status      *TaxStatus
}

func (t *TaxUpdate) Empty() bool {
	return t.Amount == nil && t.Category == nil && t.Description == nil && t.Date == nil && t.Status == nil
}
