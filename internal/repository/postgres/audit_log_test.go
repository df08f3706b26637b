package postgres_test

import (
	"context"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"spendtrack/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepository_Create(t *testing.T) {
	tc := testutil.NewTestContext(t)
	user := tc.CreateTestUser("Audit User", "audit@example.com", "password123", models.UserTypeStandard)

	entry := &models.CreateAuditLogRequest{
		UserID:      &user.ID,
		Action:      models.AuditActionCreate,
		EntityType:  "currency",
		EntityID:    "1",
		Description: "Created currency CHF",
		IPAddress:   "127.0.0.1",
		UserAgent:   "test-agent",
	}

	err := tc.AuditRepo.Create(context.Background(), entry)
	require.NoError(t, err)

	var count int
	err = tc.DB.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM audit_logs WHERE user_id = $1 AND action = $2",
		user.ID, models.AuditActionCreate).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAuditLogRepository_List(t *testing.T) {
	tc := testutil.NewTestContext(t)
	alice := tc.CreateTestUser("Alice", "alice@example.com", "password123", models.UserTypeStandard)
	bob := tc.CreateTestUser("Bob", "bob@example.com", "password123", models.UserTypeStandard)

	seed := []models.CreateAuditLogRequest{
		{UserID: &alice.ID, Action: models.AuditActionCreate, EntityType: "currency", EntityID: "1", Description: "Created currency CHF"},
		{UserID: &alice.ID, Action: models.AuditActionUpdate, EntityType: "currency", EntityID: "1", Description: "Updated currency CHF"},
		{UserID: &alice.ID, Action: models.AuditActionCreate, EntityType: "expenditure", EntityID: "7", Description: "Created expenditure"},
		{UserID: &bob.ID, Action: models.AuditActionDelete, EntityType: "currency", EntityID: "2", Description: "Deleted currency SEK"},
		{UserID: &bob.ID, Action: models.AuditActionLogin, EntityType: "user", EntityID: bob.ID.String(), Description: "User logged in"},
	}
	for i := range seed {
		require.NoError(t, tc.AuditRepo.Create(context.Background(), &seed[i]))
	}

	tests := []struct {
		name      string
		filter    repository.AuditLogFilter
		wantCount int
	}{
		{
			name:      "No filter returns everything",
			filter:    repository.AuditLogFilter{},
			wantCount: 5,
		},
		{
			name:      "Filter by user",
			filter:    repository.AuditLogFilter{UserID: &alice.ID},
			wantCount: 3,
		},
		{
			name:      "Filter by action",
			filter:    repository.AuditLogFilter{Actions: []models.AuditAction{models.AuditActionCreate}},
			wantCount: 2,
		},
		{
			name:      "Filter by several actions",
			filter:    repository.AuditLogFilter{Actions: []models.AuditAction{models.AuditActionDelete, models.AuditActionLogin}},
			wantCount: 2,
		},
		{
			name:      "Filter by entity type",
			filter:    repository.AuditLogFilter{EntityTypes: []string{"currency"}},
			wantCount: 3,
		},
		{
			name:      "Filter by entity id",
			filter:    repository.AuditLogFilter{EntityIDs: []string{"1"}},
			wantCount: 2,
		},
		{
			name:      "Filters are conjunctive",
			filter:    repository.AuditLogFilter{UserID: &alice.ID, EntityTypes: []string{"currency"}},
			wantCount: 2,
		},
		{
			name:      "Limit caps results",
			filter:    repository.AuditLogFilter{Limit: testutil.Int(2)},
			wantCount: 2,
		},
		{
			name:      "No match",
			filter:    repository.AuditLogFilter{EntityTypes: []string{"zone"}},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, err := tc.AuditRepo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Len(t, logs, tt.wantCount)
		})
	}
}

func TestAuditLogRepository_List_TimeWindowAndOrder(t *testing.T) {
	tc := testutil.NewTestContext(t)
	user := tc.CreateTestUser("Audit User", "audit@example.com", "password123", models.UserTypeStandard)

	// Two entries with distinct created_at values
	old := time.Now().Add(-48 * time.Hour)
	_, err := tc.DB.ExecContext(context.Background(),
		`INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, description, metadata, ip_address, user_agent, created_at)
		 VALUES (gen_random_uuid(), $1, 'create', 'currency', '1', 'Created currency CHF', '', '', '', $2)`,
		user.ID, old)
	require.NoError(t, err)

	recent := &models.CreateAuditLogRequest{
		UserID:      &user.ID,
		Action:      models.AuditActionUpdate,
		EntityType:  "currency",
		EntityID:    "1",
		Description: "Updated currency CHF",
	}
	require.NoError(t, tc.AuditRepo.Create(context.Background(), recent))

	cutoff := time.Now().Add(-24 * time.Hour)

	logs, err := tc.AuditRepo.List(context.Background(), repository.AuditLogFilter{CreatedAfter: &cutoff})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionUpdate, logs[0].Action)

	logs, err = tc.AuditRepo.List(context.Background(), repository.AuditLogFilter{CreatedBefore: &cutoff})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)

	// Descending order puts the most recent entry first
	logs, err = tc.AuditRepo.List(context.Background(), repository.AuditLogFilter{OrderDesc: true})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionUpdate, logs[0].Action)
	assert.Equal(t, models.AuditActionCreate, logs[1].Action)
}
