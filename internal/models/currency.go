package models

import "time"

// Currency represents a currency in the system
type Currency struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" example:"US Dollar"`
	Acronym   string    `json:"acronym" db:"acronym" example:"USD"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateCurrencyRequest represents the request to create a new currency
type CreateCurrencyRequest struct {
	Name    string `json:"name" binding:"required" example:"US Dollar"`
	Acronym string `json:"acronym" binding:"required,len=3" example:"USD"`
}

// UpdateCurrencyRequest represents the request to update a currency.
// Fields left out of the payload are not touched.
type UpdateCurrencyRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitnil,min=1" example:"US Dollar"`
	Acronym *string `json:"acronym,omitempty" binding:"omitnil,len=3" example:"USD"`
}
