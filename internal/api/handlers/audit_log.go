package handlers

import (
	"net/http"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLogHandler handles audit log-related requests
type AuditLogHandler struct {
	repo repository.AuditLogRepository
}

// NewAuditLogHandler creates a new AuditLogHandler
func NewAuditLogHandler(repo repository.AuditLogRepository) *AuditLogHandler {
	return &AuditLogHandler{repo: repo}
}

// ListAuditLogs godoc
// @Summary List audit log entries
// @Description Returns audit log entries matching the given filters, most recent first. Admin only.
// @Tags audit-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Exact user ID match"
// @Param action query []string false "Actions to include (repeatable)"
// @Param entity_type query []string false "Entity types to include (repeatable)"
// @Param entity_id query string false "Exact entity ID match"
// @Param before query string false "Only entries created before this time (RFC3339)"
// @Param after query string false "Only entries created after this time (RFC3339)"
// @Param _limit query int false "Page size" default(20)
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.MessageResponse "Unauthenticated or permission denied"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	filter := repository.AuditLogFilter{OrderDesc: true}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "user_id must be a valid UUID"})
			return
		}
		filter.UserID = &userID
	}

	for _, raw := range c.QueryArray("action") {
		filter.Actions = append(filter.Actions, models.AuditAction(raw))
	}
	filter.EntityTypes = c.QueryArray("entity_type")

	if entityID := c.Query("entity_id"); entityID != "" {
		filter.EntityIDs = []string{entityID}
	}

	if raw := c.Query("before"); raw != "" {
		before, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "before must be an RFC3339 timestamp"})
			return
		}
		filter.CreatedBefore = &before
	}
	if raw := c.Query("after"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "after must be an RFC3339 timestamp"})
			return
		}
		filter.CreatedAfter = &after
	}

	limit := parseLimit(c)
	filter.Limit = &limit

	logs, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch audit logs"})
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, logs)
}
