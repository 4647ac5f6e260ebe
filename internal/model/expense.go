package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are plain JSON numbers in expenses.json, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a single record in expenses.json.
type Expense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // ISO-8601 yyyy-MM-dd, date-only
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   int64           `json:"createdAt"` // epoch milliseconds
	UpdatedAt   *int64          `json:"updatedAt,omitempty"`
	IsPaid      bool            `json:"isPaid"`
}

// Touch records a modification time in epoch milliseconds.
func (e *Expense) Touch(nowMillis int64) {
	e.UpdatedAt = &nowMillis
}
