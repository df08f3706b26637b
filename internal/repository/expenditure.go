package repository

import (
	"context"
	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// ExpenditureRepository defines the interface for expenditure-related database operations
type ExpenditureRepository interface {
	Repository
	Create(ctx context.Context, expenditure *models.Expenditure) error
	Update(ctx context.Context, expenditure *models.Expenditure) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Expenditure, error)
	List(ctx context.Context, filter ExpenditureFilter) ([]models.Expenditure, error)
	Count(ctx context.Context, filter ExpenditureFilter) (int, error)
}

// ExpenditureFilter defines the filter options for listing expenditures.
// Description is a case-insensitive substring match; the rest are exact.
type ExpenditureFilter struct {
	Description *string
	CurrencyID  *int64
	UserID      *uuid.UUID
	ID          *int64
	Limit       *int
	Offset      *int
}
