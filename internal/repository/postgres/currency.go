package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"strings"
	"time"
)

type currencyRepository struct {
	repository.BaseRepository
}

// NewCurrencyRepository creates a new PostgreSQL currency repository
func NewCurrencyRepository(db *sql.DB) repository.CurrencyRepository {
	return &currencyRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *currencyRepository) Create(ctx context.Context, currency *models.Currency) error {
	query := `
		INSERT INTO currencies (name, acronym, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, created_at, updated_at`

	now := time.Now()

	return r.DB().QueryRowContext(ctx, query,
		currency.Name,
		currency.Acronym,
		now,
	).Scan(&currency.ID, &currency.CreatedAt, &currency.UpdatedAt)
}

func (r *currencyRepository) Update(ctx context.Context, currency *models.Currency) error {
	query := `
		UPDATE currencies
		SET name = $1, acronym = $2, updated_at = $3
		WHERE id = $4
		RETURNING updated_at`

	result := r.DB().QueryRowContext(ctx, query,
		currency.Name,
		currency.Acronym,
		time.Now(),
		currency.ID,
	)

	if err := result.Scan(&currency.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *currencyRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM currencies WHERE id = $1`
	result, err := r.DB().ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *currencyRepository) GetByID(ctx context.Context, id int64) (*models.Currency, error) {
	query := `
		SELECT id, name, acronym, created_at, updated_at
		FROM currencies
		WHERE id = $1`

	currency := &models.Currency{}
	err := r.DB().QueryRowContext(ctx, query, id).Scan(
		&currency.ID,
		&currency.Name,
		&currency.Acronym,
		&currency.CreatedAt,
		&currency.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return currency, nil
}

// buildConditions translates the filter into SQL predicates. Substring
// filters use ILIKE so matching is case-insensitive and unanchored.
func buildCurrencyConditions(filter repository.CurrencyFilter) ([]string, []interface{}) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argCount := 1

	if filter.Name != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argCount))
		args = append(args, "%"+*filter.Name+"%")
		argCount++
	}

	if filter.Acronym != nil {
		conditions = append(conditions, fmt.Sprintf("acronym ILIKE $%d", argCount))
		args = append(args, "%"+*filter.Acronym+"%")
		argCount++
	}

	if filter.ID != nil {
		conditions = append(conditions, fmt.Sprintf("id = $%d", argCount))
		args = append(args, *filter.ID)
	}

	return conditions, args
}

func (r *currencyRepository) List(ctx context.Context, filter repository.CurrencyFilter) ([]models.Currency, error) {
	conditions, args := buildCurrencyConditions(filter)
	argCount := len(args) + 1

	query := `
		SELECT id, name, acronym, created_at, updated_at
		FROM currencies`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Ascending id keeps pagination stable across requests
	query += " ORDER BY id ASC"

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, *filter.Limit)
		argCount++
	}

	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, *filter.Offset)
	}

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var currencies []models.Currency
	for rows.Next() {
		var currency models.Currency
		if err := rows.Scan(
			&currency.ID,
			&currency.Name,
			&currency.Acronym,
			&currency.CreatedAt,
			&currency.UpdatedAt,
		); err != nil {
			return nil, err
		}
		currencies = append(currencies, currency)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *currencyRepository) Count(ctx context.Context, filter repository.CurrencyFilter) (int, error) {
	conditions, args := buildCurrencyConditions(filter)

	query := `SELECT COUNT(*) FROM currencies`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	err := r.DB().QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}
