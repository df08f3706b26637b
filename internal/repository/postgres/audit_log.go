package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type auditLogRepository struct {
	repository.BaseRepository
}

// NewAuditLogRepository creates a new PostgreSQL audit log repository
func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *auditLogRepository) Create(ctx context.Context, log *models.CreateAuditLogRequest) error {
	query := `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, description, metadata, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB().ExecContext(ctx, query,
		uuid.New(),
		log.UserID,
		log.Action,
		log.EntityType,
		log.EntityID,
		log.Description,
		log.Metadata,
		log.IPAddress,
		log.UserAgent,
		time.Now(),
	)
	return err
}

func (r *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]models.AuditLog, error) {
	query, args := r.buildListQuery(filter)

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var log models.AuditLog
		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.Action,
			&log.EntityType,
			&log.EntityID,
			&log.Description,
			&log.Metadata,
			&log.IPAddress,
			&log.UserAgent,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func (r *auditLogRepository) buildListQuery(filter repository.AuditLogFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argCount))
		args = append(args, *filter.UserID)
		argCount++
	}

	if len(filter.Actions) > 0 {
		actions := make([]string, len(filter.Actions))
		for i, a := range filter.Actions {
			actions[i] = string(a)
		}
		conditions = append(conditions, fmt.Sprintf("action = ANY($%d)", argCount))
		args = append(args, pq.Array(actions))
		argCount++
	}

	if len(filter.EntityTypes) > 0 {
		conditions = append(conditions, fmt.Sprintf("entity_type = ANY($%d)", argCount))
		args = append(args, pq.Array(filter.EntityTypes))
		argCount++
	}

	if len(filter.EntityIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("entity_id = ANY($%d)", argCount))
		args = append(args, pq.Array(filter.EntityIDs))
		argCount++
	}

	if filter.CreatedBefore != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", argCount))
		args = append(args, *filter.CreatedBefore)
		argCount++
	}

	if filter.CreatedAfter != nil {
		conditions = append(conditions, fmt.Sprintf("created_at > $%d", argCount))
		args = append(args, *filter.CreatedAfter)
		argCount++
	}

	query := `
		SELECT id, user_id, action, entity_type, entity_id, description, metadata, ip_address, user_agent, created_at
		FROM audit_logs`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "created_at"
	if filter.OrderBy != "" {
		orderBy = filter.OrderBy
	}
	direction := "ASC"
	if filter.OrderDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", orderBy, direction)

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, *filter.Limit)
		argCount++
	}

	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, *filter.Offset)
	}

	return query, args
}

func (r *auditLogRepository) CleanupOld(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	_, err := r.DB().ExecContext(ctx, `DELETE FROM audit_logs WHERE created_at < $1`, cutoff)
	return err
}
