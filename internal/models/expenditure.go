package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expenditure represents a single spend recorded by a user. The currency
// link is optional; an expenditure without one is assumed to be in the
// user's default currency.
type Expenditure struct {
	ID          int64           `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	CurrencyID  *int64          `json:"currency_id" db:"currency_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount" example:"149.99"`
	Description string          `json:"description" db:"description" example:"Groceries"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateExpenditureRequest represents the request to record a new expenditure.
// The owner is always the authenticated caller, never part of the payload.
type CreateExpenditureRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0" example:"149.99"`
	Description string          `json:"description" binding:"required" example:"Groceries"`
	CurrencyID  *int64          `json:"currency_id,omitempty"`
}

// UpdateExpenditureRequest represents the request to update an expenditure.
// Fields left out of the payload are not touched.
type UpdateExpenditureRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty" binding:"omitnil,gt=0"`
	Description *string          `json:"description,omitempty" binding:"omitnil,min=1"`
	CurrencyID  *int64           `json:"currency_id,omitempty"`
}
