package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"spendtrack/internal/api/routes"
	"spendtrack/internal/models"
	"spendtrack/internal/testutil"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getAuditLogs(router *gin.Engine, query, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/audit-logs"+query, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestListAuditLogs_AdminOnly(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := routes.SetupRoutes(tc.Config, tc.DB)

	user := tc.CreateTestUser("User", "user@example.com", "password123", models.UserTypeStandard)
	userToken := tc.GetTestJWT(user.ID)

	w := getAuditLogs(router, "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var unauthenticated models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unauthenticated))
	assert.Equal(t, "Unauthenticated.", unauthenticated.Message)

	w = getAuditLogs(router, "", userToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var denied models.PermissionDeniedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &denied))
	assert.Equal(t, "Permission Denied", denied.Message)
	require.NotNil(t, denied.User)
	assert.Equal(t, "user@example.com", denied.User.Email)
}

func TestListAuditLogs_ReturnsTrail(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := routes.SetupRoutes(tc.Config, tc.DB)

	admin := tc.CreateTestUser("Admin", "admin@example.com", "password123", models.UserTypeAdmin)
	adminToken := tc.GetTestJWT(admin.ID)

	// Mutations through the API leave audit entries behind
	w := postJSON(router, "/api/currencies", gin.H{"name": "Swiss Franc", "acronym": "CHF"}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = getAuditLogs(router, "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []models.AuditLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
	assert.Equal(t, "currency", logs[0].EntityType)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, admin.ID, *logs[0].UserID)
}

func TestListAuditLogs_Filters(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := routes.SetupRoutes(tc.Config, tc.DB)

	admin := tc.CreateTestUser("Admin", "admin@example.com", "password123", models.UserTypeAdmin)
	other := tc.CreateTestUser("Other", "other@example.com", "password123", models.UserTypeStandard)
	adminToken := tc.GetTestJWT(admin.ID)

	seed := []models.CreateAuditLogRequest{
		{UserID: &admin.ID, Action: models.AuditActionCreate, EntityType: "currency", EntityID: "1", Description: "Created currency CHF"},
		{UserID: &admin.ID, Action: models.AuditActionDelete, EntityType: "currency", EntityID: "1", Description: "Deleted currency CHF"},
		{UserID: &other.ID, Action: models.AuditActionCreate, EntityType: "expenditure", EntityID: "4", Description: "Created expenditure"},
	}
	for i := range seed {
		require.NoError(t, tc.AuditRepo.Create(context.Background(), &seed[i]))
	}

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"no filter", "", 3},
		{"by action", "?action=create", 2},
		{"by entity type", "?entity_type=currency", 2},
		{"by entity id", "?entity_id=4", 1},
		{"by user", "?user_id=" + other.ID.String(), 1},
		{"conjunctive", "?action=create&entity_type=currency", 1},
		{"limit", "?_limit=2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getAuditLogs(router, tt.query, adminToken)
			require.Equal(t, http.StatusOK, w.Code)

			var logs []models.AuditLog
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
			assert.Len(t, logs, tt.wantCount)
		})
	}

	w := getAuditLogs(router, "?user_id=not-a-uuid", adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
