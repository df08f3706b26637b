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
)

// DefaultPerPage is the page size applied when _limit is absent
const DefaultPerPage = 20

// CurrencyHandler handles currency-related requests
type CurrencyHandler struct {
	repo      repository.CurrencyRepository
	auditRepo repository.AuditLogRepository
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(repo repository.CurrencyRepository, auditRepo repository.AuditLogRepository) *CurrencyHandler {
	return &CurrencyHandler{repo: repo, auditRepo: auditRepo}
}

// parseLimit reads the _limit query parameter, falling back to the
// default page size when absent or unusable
func parseLimit(c *gin.Context) int {
	if raw := c.Query("_limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return DefaultPerPage
}

func currencyFilterFromQuery(c *gin.Context) (repository.CurrencyFilter, int) {
	var filter repository.CurrencyFilter

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if acronym := c.Query("acronym"); acronym != "" {
		filter.Acronym = &acronym
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

// ListCurrencies godoc
// @Summary List currencies
// @Description Returns currencies matching the given filters, ordered by ID
// @Tags currencies
// @Accept json
// @Produce json
// @Param name query string false "Substring match on name"
// @Param acronym query string false "Substring match on acronym"
// @Param _id query int false "Exact ID match"
// @Param _limit query int false "Page size" default(20)
// @Success 200 {object} models.ListResponse[models.Currency]
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	filter, limit := currencyFilterFromQuery(c)

	currencies, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch currencies"})
		return
	}

	total, err := h.repo.Count(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch currencies"})
		return
	}

	c.JSON(http.StatusOK, models.NewListResponse(currencies, limit, total))
}

// CreateCurrency godoc
// @Summary Create a new currency
// @Description Creates a new currency
// @Tags currencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param currency body models.CreateCurrencyRequest true "Currency to create"
// @Success 201 {object} models.Currency
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Unauthenticated"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failure"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies [post]
func (h *CurrencyHandler) CreateCurrency(c *gin.Context) {
	var req models.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validation.HandleBindError(c, err)
		return
	}

	currency := models.Currency{
		Name:    req.Name,
		Acronym: req.Acronym,
	}

	if err := h.repo.Create(c.Request.Context(), &currency); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create currency"})
		return
	}

	h.audit(c, models.AuditActionCreate, currency.ID, fmt.Sprintf("Created currency %s", currency.Acronym))

	c.JSON(http.StatusCreated, currency)
}

// UpdateCurrency godoc
// @Summary Update a currency
// @Description Updates an existing currency. Fields absent from the payload are left unchanged.
// @Tags currencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Currency ID"
// @Param currency body models.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} models.Currency
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Unauthenticated"
// @Failure 404 {object} models.ErrorsResponse "Currency not found"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failure"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies/{id} [put]
func (h *CurrencyHandler) UpdateCurrency(c *gin.Context) {
	currency, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validation.HandleBindError(c, err)
		return
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Acronym != nil {
		currency.Acronym = *req.Acronym
	}

	if err := h.repo.Update(c.Request.Context(), currency); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update currency"})
		return
	}

	h.audit(c, models.AuditActionUpdate, currency.ID, fmt.Sprintf("Updated currency %s", currency.Acronym))

	c.JSON(http.StatusOK, currency)
}

// DeleteCurrency godoc
// @Summary Delete a currency
// @Description Deletes a currency and returns the deleted record
// @Tags currencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Currency ID"
// @Success 200 {object} models.Currency
// @Failure 401 {object} models.MessageResponse "Unauthenticated or permission denied"
// @Failure 404 {object} models.ErrorsResponse "Currency not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies/{id} [delete]
func (h *CurrencyHandler) DeleteCurrency(c *gin.Context) {
	currency, ok := h.lookup(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), currency.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete currency"})
		return
	}

	h.audit(c, models.AuditActionDelete, currency.ID, fmt.Sprintf("Deleted currency %s", currency.Acronym))

	c.JSON(http.StatusOK, currency)
}

// lookup resolves the :id path parameter to a currency, writing the
// not-found envelope on failure. The raw path segment is echoed back
// whether or not it parses as an ID.
func (h *CurrencyHandler) lookup(c *gin.Context) (*models.Currency, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return nil, false
	}

	currency, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch currency"})
		}
		return nil, false
	}

	return currency, true
}

func (h *CurrencyHandler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorsResponse{
		Errors: []string{fmt.Sprintf("Currency with ID %s not found", c.Param("id"))},
	})
}

func (h *CurrencyHandler) audit(c *gin.Context, action models.AuditAction, id int64, description string) {
	entry := models.CreateAuditLogRequest{
		Action:      action,
		EntityType:  "currency",
		EntityID:    strconv.FormatInt(id, 10),
		Description: description,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}
	if user := auth.GetUserFromContext(c); user != nil {
		entry.UserID = &user.ID
	}

	// Audit failures never fail the request
	if err := h.auditRepo.Create(c.Request.Context(), &entry); err != nil {
		log.Printf("Failed to write audit log entry: %v", err)
	}
}
