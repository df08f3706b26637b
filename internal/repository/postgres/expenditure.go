package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"strings"
	"time"

	"github.com/lib/pq"
)

type expenditureRepository struct {
	repository.BaseRepository
}

// NewExpenditureRepository creates a new PostgreSQL expenditure repository
func NewExpenditureRepository(db *sql.DB) repository.ExpenditureRepository {
	return &expenditureRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *expenditureRepository) Create(ctx context.Context, expenditure *models.Expenditure) error {
	query := `
		INSERT INTO expenditures (user_id, currency_id, amount, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at`

	now := time.Now()

	err := r.DB().QueryRowContext(ctx, query,
		expenditure.UserID,
		expenditure.CurrencyID,
		expenditure.Amount,
		expenditure.Description,
		now,
	).Scan(&expenditure.ID, &expenditure.CreatedAt, &expenditure.UpdatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "foreign_key_violation" {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *expenditureRepository) Update(ctx context.Context, expenditure *models.Expenditure) error {
	query := `
		UPDATE expenditures
		SET currency_id = $1, amount = $2, description = $3, updated_at = $4
		WHERE id = $5
		RETURNING updated_at`

	result := r.DB().QueryRowContext(ctx, query,
		expenditure.CurrencyID,
		expenditure.Amount,
		expenditure.Description,
		time.Now(),
		expenditure.ID,
	)

	if err := result.Scan(&expenditure.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return repository.ErrNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "foreign_key_violation" {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *expenditureRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM expenditures WHERE id = $1`
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

func (r *expenditureRepository) GetByID(ctx context.Context, id int64) (*models.Expenditure, error) {
	query := `
		SELECT id, user_id, currency_id, amount, description, created_at, updated_at
		FROM expenditures
		WHERE id = $1`

	expenditure := &models.Expenditure{}
	err := r.DB().QueryRowContext(ctx, query, id).Scan(
		&expenditure.ID,
		&expenditure.UserID,
		&expenditure.CurrencyID,
		&expenditure.Amount,
		&expenditure.Description,
		&expenditure.CreatedAt,
		&expenditure.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return expenditure, nil
}

func buildExpenditureConditions(filter repository.ExpenditureFilter) ([]string, []interface{}) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argCount := 1

	if filter.Description != nil {
		conditions = append(conditions, fmt.Sprintf("description ILIKE $%d", argCount))
		args = append(args, "%"+*filter.Description+"%")
		argCount++
	}

	if filter.CurrencyID != nil {
		conditions = append(conditions, fmt.Sprintf("currency_id = $%d", argCount))
		args = append(args, *filter.CurrencyID)
		argCount++
	}

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argCount))
		args = append(args, *filter.UserID)
		argCount++
	}

	if filter.ID != nil {
		conditions = append(conditions, fmt.Sprintf("id = $%d", argCount))
		args = append(args, *filter.ID)
	}

	return conditions, args
}

func (r *expenditureRepository) List(ctx context.Context, filter repository.ExpenditureFilter) ([]models.Expenditure, error) {
	conditions, args := buildExpenditureConditions(filter)
	argCount := len(args) + 1

	query := `
		SELECT id, user_id, currency_id, amount, description, created_at, updated_at
		FROM expenditures`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

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

	var expenditures []models.Expenditure
	for rows.Next() {
		var expenditure models.Expenditure
		if err := rows.Scan(
			&expenditure.ID,
			&expenditure.UserID,
			&expenditure.CurrencyID,
			&expenditure.Amount,
			&expenditure.Description,
			&expenditure.CreatedAt,
			&expenditure.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenditures = append(expenditures, expenditure)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return expenditures, nil
}

func (r *expenditureRepository) Count(ctx context.Context, filter repository.ExpenditureFilter) (int, error) {
	conditions, args := buildExpenditureConditions(filter)

	query := `SELECT COUNT(*) FROM expenditures`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	err := r.DB().QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}
