package repository

import (
	"context"
	"spendtrack/internal/models"
)

// CurrencyRepository defines the interface for currency-related database operations
type CurrencyRepository interface {
	Repository
	Create(ctx context.Context, currency *models.Currency) error
	Update(ctx context.Context, currency *models.Currency) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Currency, error)
	List(ctx context.Context, filter CurrencyFilter) ([]models.Currency, error)
	Count(ctx context.Context, filter CurrencyFilter) (int, error)
}

// CurrencyFilter defines the filter options for listing currencies.
// Name and Acronym are unanchored, case-insensitive substring matches;
// ID is an exact match. Absent fields impose no constraint and present
// fields combine with AND.
type CurrencyFilter struct {
	Name    *string
	Acronym *string
	ID      *int64
	Limit   *int
	Offset  *int
}
