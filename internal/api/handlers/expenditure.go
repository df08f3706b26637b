package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"spendtrack/internal/auth"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"spendtrack/internal/validation"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenditureHandler handles expenditure-related requests
type ExpenditureHandler struct {
	repo      repository.ExpenditureRepository
	auditRepo repository.AuditLogRepository
}

// NewExpenditureHandler creates a new ExpenditureHandler
func NewExpenditureHandler(repo repository.ExpenditureRepository, auditRepo repository.AuditLogRepository) *ExpenditureHandler {
	return &ExpenditureHandler{repo: repo, auditRepo: auditRepo}
}

func expenditureFilterFromQuery(c *gin.Context) (repository.ExpenditureFilter, int) {
	var filter repository.ExpenditureFilter

	if description := c.Query("description"); description != "" {
		filter.Description = &description
	}
	if raw := c.Query("currency_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.CurrencyID = &id
		}
	}
	if raw := c.Query("user_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.UserID = &id
		}
	}
	if raw := c.Query("_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.ID = &id
		}
	}

	limit := parseLimit(c)
	filter.Limit = &limit
	return filter, limit
}

// ListExpenditures godoc
// @Summary List expenditures
// @Description Returns expenditures matching the given filters, ordered by ID
// @Tags expenditures
// @Accept json
// @Produce json
// @Param description query string false "Substring match on description"
// @Param currency_id query int false "Exact currency match"
// @Param user_id query string false "Exact owner match"
// @Param _id query int false "Exact ID match"
// @Param _limit query int false "Page size" default(20)
// @Success 200 {object} models.ListResponse[models.Expenditure]
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /expenditures [get]
func (h *ExpenditureHandler) ListExpenditures(c *gin.Context) {
	filter, limit := expenditureFilterFromQuery(c)

	expenditures, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch expenditures"})
		return
	}

	total, err := h.repo.Count(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch expenditures"})
		return
	}

	c.JSON(http.StatusOK, models.NewListResponse(expenditures, limit, total))
}

// CreateExpenditure godoc
// @Summary Record a new expenditure
// @Description Records an expenditure owned by the authenticated caller
// @Tags expenditures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expenditure body models.CreateExpenditureRequest true "Expenditure to record"
// @Success 201 {object} models.Expenditure
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Unauthenticated"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failure"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /expenditures [post]
func (h *ExpenditureHandler) CreateExpenditure(c *gin.Context) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Unauthenticated."})
		return
	}

	var req models.CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validation.HandleBindError(c, err)
		return
	}

	expenditure := models.Expenditure{
		UserID:      user.ID,
		CurrencyID:  req.CurrencyID,
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := h.repo.Create(c.Request.Context(), &expenditure); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
				Message: "The given data was invalid.",
				Errors:  map[string][]string{"currency_id": {"The selected currency_id is invalid."}},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create expenditure"})
		return
	}

	h.audit(c, models.AuditActionCreate, expenditure.ID, fmt.Sprintf("Recorded expenditure of %s", expenditure.Amount))

	c.JSON(http.StatusCreated, expenditure)
}

// UpdateExpenditure godoc
// @Summary Update an expenditure
// @Description Updates an expenditure. Only the owner or an admin may update it.
// @Tags expenditures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expenditure ID"
// @Param expenditure body models.UpdateExpenditureRequest true "Fields to update"
// @Success 200 {object} models.Expenditure
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.PermissionDeniedResponse "Unauthenticated or not the owner"
// @Failure 404 {object} models.ErrorsResponse "Expenditure not found"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failure"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /expenditures/{id} [put]
func (h *ExpenditureHandler) UpdateExpenditure(c *gin.Context) {
	expenditure, ok := h.lookup(c)
	if !ok {
		return
	}

	user := auth.GetUserFromContext(c)
	if !h.canModify(user, expenditure) {
		h.permissionDenied(c, user)
		return
	}

	var req models.UpdateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validation.HandleBindError(c, err)
		return
	}

	if req.Amount != nil {
		expenditure.Amount = *req.Amount
	}
	if req.Description != nil {
		expenditure.Description = *req.Description
	}
	if req.CurrencyID != nil {
		expenditure.CurrencyID = req.CurrencyID
	}

	if err := h.repo.Update(c.Request.Context(), expenditure); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
				Message: "The given data was invalid.",
				Errors:  map[string][]string{"currency_id": {"The selected currency_id is invalid."}},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update expenditure"})
		return
	}

	h.audit(c, models.AuditActionUpdate, expenditure.ID, fmt.Sprintf("Updated expenditure %d", expenditure.ID))

	c.JSON(http.StatusOK, expenditure)
}

// DeleteExpenditure godoc
// @Summary Delete an expenditure
// @Description Deletes an expenditure and returns the deleted record. Only the owner or an admin may delete it.
// @Tags expenditures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expenditure ID"
// @Success 200 {object} models.Expenditure
// @Failure 401 {object} models.PermissionDeniedResponse "Unauthenticated or not the owner"
// @Failure 404 {object} models.ErrorsResponse "Expenditure not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /expenditures/{id} [delete]
func (h *ExpenditureHandler) DeleteExpenditure(c *gin.Context) {
	expenditure, ok := h.lookup(c)
	if !ok {
		return
	}

	user := auth.GetUserFromContext(c)
	if !h.canModify(user, expenditure) {
		h.permissionDenied(c, user)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), expenditure.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete expenditure"})
		return
	}

	h.audit(c, models.AuditActionDelete, expenditure.ID, fmt.Sprintf("Deleted expenditure %d", expenditure.ID))

	c.JSON(http.StatusOK, expenditure)
}

// canModify reports whether the caller owns the expenditure or is an admin
func (h *ExpenditureHandler) canModify(user *models.User, expenditure *models.Expenditure) bool {
	if user == nil {
		return false
	}
	return user.ID == expenditure.UserID || user.IsAdmin()
}

func (h *ExpenditureHandler) permissionDenied(c *gin.Context, user *models.User) {
	c.JSON(http.StatusUnauthorized, models.PermissionDeniedResponse{
		Message: "Permission Denied",
		User:    user,
	})
}

func (h *ExpenditureHandler) lookup(c *gin.Context) (*models.Expenditure, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return nil, false
	}

	expenditure, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch expenditure"})
		}
		return nil, false
	}

	return expenditure, true
}

func (h *ExpenditureHandler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorsResponse{
		Errors: []string{fmt.Sprintf("Expenditure with ID %s not found", c.Param("id"))},
	})
}

func (h *ExpenditureHandler) audit(c *gin.Context, action models.AuditAction, id int64, description string) {
	entry := models.CreateAuditLogRequest{
		Action:      action,
		EntityType:  "expenditure",
		EntityID:    strconv.FormatInt(id, 10),
		Description: description,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}
	if user := auth.GetUserFromContext(c); user != nil {
		entry.UserID = &user.ID
	}

	if err := h.auditRepo.Create(c.Request.Context(), &entry); err != nil {
		log.Printf("Failed to write audit log entry: %v", err)
	}
}
