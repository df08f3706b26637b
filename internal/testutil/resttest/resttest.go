// Package resttest runs a shared table-driven suite against REST
// resources so each resource's handler tests only describe what is
// specific to that resource.
package resttest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"spendtrack/internal/api/routes"
	"spendtrack/internal/models"
	"spendtrack/internal/testutil"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Resource describes a REST resource under test
type Resource struct {
	// Name is the singular resource name as echoed in error envelopes
	Name string
	// Path is the collection URL, e.g. "/api/currencies"
	Path string
	// Table is the backing table, truncated before seeding
	Table string
	// Seed inserts n records owned by the given user. Records are
	// expected to receive sequential IDs starting at 1.
	Seed func(tc *testutil.TestContext, owner *models.User, n int)
	// ValidPayload returns a store payload that passes validation
	ValidPayload func(i int) gin.H
	// RequiredFields are payload fields that must be present on store
	RequiredFields []string
	// ExactLengthFields maps payload fields to a required character count
	ExactLengthFields map[string]int
	// UpdateField and UpdateValue drive the partial update check
	UpdateField string
	UpdateValue interface{}
	// AdminOnlyDelete marks resources only admins may destroy
	AdminOnlyDelete bool
	// OwnerScoped marks resources whose mutations are restricted to
	// their owner (or an admin)
	OwnerScoped bool
}

type suite struct {
	t      *testing.T
	tc     *testutil.TestContext
	router *gin.Engine
	res    Resource

	adminToken string
	ownerToken string
	otherToken string
}

type listEnvelope struct {
	Data []map[string]interface{} `json:"data"`
	Meta models.PageMeta          `json:"meta"`
}

const seedCount = 25

// Run seeds the resource and executes the shared suite against it
func Run(t *testing.T, res Resource) {
	tc := testutil.NewTestContext(t)
	router := routes.SetupRoutes(tc.Config, tc.DB)

	admin := tc.CreateTestUser("Admin", "admin@example.com", "password123", models.UserTypeAdmin)
	owner := tc.CreateTestUser("Owner", "owner@example.com", "password123", models.UserTypeStandard)
	other := tc.CreateTestUser("Other", "other@example.com", "password123", models.UserTypeStandard)

	s := &suite{
		t:          t,
		tc:         tc,
		router:     router,
		res:        res,
		adminToken: tc.GetTestJWT(admin.ID),
		ownerToken: tc.GetTestJWT(owner.ID),
		otherToken: tc.GetTestJWT(other.ID),
	}

	// Start from a known population regardless of seed migrations
	tc.TruncateTable(res.Table)
	res.Seed(tc, owner, seedCount)

	t.Run("index applies default page size", s.indexDefaultLimit)
	t.Run("index honours _limit", s.indexCustomLimit)
	t.Run("index filters by _id", s.indexIDFilter)
	t.Run("store requires authentication", s.storeUnauthenticated)
	t.Run("store validates required fields", s.storeRequiredFields)
	t.Run("store validates exact length fields", s.storeExactLengthFields)
	t.Run("store creates record", s.storeCreates)
	t.Run("update rejects unknown id", s.updateUnknownID)
	t.Run("update applies partial payload", s.updatePartial)
	if res.OwnerScoped {
		t.Run("update denies non-owner", s.updateNonOwner)
	}
	t.Run("destroy returns deleted record", s.destroy)
}

func (s *suite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *suite) decodeList(w *httptest.ResponseRecorder) listEnvelope {
	s.t.Helper()
	var envelope listEnvelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func (s *suite) indexDefaultLimit(t *testing.T) {
	w := s.request(http.MethodGet, s.res.Path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := s.decodeList(w)
	assert.Len(t, envelope.Data, 20)
	assert.Equal(t, 20, envelope.Meta.PerPage)
	assert.Equal(t, seedCount, envelope.Meta.Total)
}

func (s *suite) indexCustomLimit(t *testing.T) {
	w := s.request(http.MethodGet, s.res.Path+"?_limit=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := s.decodeList(w)
	assert.Len(t, envelope.Data, 10)
	assert.Equal(t, 10, envelope.Meta.PerPage)
	assert.Equal(t, seedCount, envelope.Meta.Total)
}

func (s *suite) indexIDFilter(t *testing.T) {
	w := s.request(http.MethodGet, s.res.Path+"?_id=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := s.decodeList(w)
	require.Len(t, envelope.Data, 1)
	assert.EqualValues(t, 5, envelope.Data[0]["id"])
	assert.Equal(t, 1, envelope.Meta.Total)
}

func (s *suite) storeUnauthenticated(t *testing.T) {
	w := s.request(http.MethodPost, s.res.Path, "", s.res.ValidPayload(100))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unauthenticated.", resp.Message)
}

func (s *suite) storeRequiredFields(t *testing.T) {
	w := s.request(http.MethodPost, s.res.Path, s.ownerToken, gin.H{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "The given data was invalid.", resp.Message)

	for _, field := range s.res.RequiredFields {
		expected := fmt.Sprintf("The %s field is required.", field)
		assert.Containsf(t, resp.Errors[field], expected, "field %s", field)
	}
}

func (s *suite) storeExactLengthFields(t *testing.T) {
	if len(s.res.ExactLengthFields) == 0 {
		t.Skip("resource has no exact length fields")
	}

	for field, length := range s.res.ExactLengthFields {
		for _, size := range []int{length - 1, length + 1} {
			payload := s.res.ValidPayload(101)
			payload[field] = strings.Repeat("X", size)

			w := s.request(http.MethodPost, s.res.Path, s.ownerToken, payload)
			require.Equalf(t, http.StatusUnprocessableEntity, w.Code, "field %s size %d", field, size)

			var resp models.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			expected := fmt.Sprintf("The %s must be %d characters.", field, length)
			assert.Contains(t, resp.Errors[field], expected)
		}
	}
}

func (s *suite) storeCreates(t *testing.T) {
	w := s.request(http.MethodPost, s.res.Path, s.ownerToken, s.res.ValidPayload(102))
	require.Equal(t, http.StatusCreated, w.Code)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.NotZero(t, record["id"])
}

func (s *suite) updateUnknownID(t *testing.T) {
	w := s.request(http.MethodPut, s.res.Path+"/999999", s.ownerToken, gin.H{s.res.UpdateField: s.res.UpdateValue})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, fmt.Sprintf("%s with ID 999999 not found", s.res.Name), resp.Errors[0])
}

func (s *suite) updatePartial(t *testing.T) {
	before := s.fetchByID(t, 1)

	w := s.request(http.MethodPut, s.res.Path+"/1", s.ownerToken, gin.H{s.res.UpdateField: s.res.UpdateValue})
	require.Equal(t, http.StatusOK, w.Code)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.EqualValues(t, 1, record["id"])
	assert.EqualValues(t, s.res.UpdateValue, record[s.res.UpdateField])

	// Fields absent from the payload keep their seeded values
	for field, value := range before {
		if field == s.res.UpdateField || field == "updated_at" {
			continue
		}
		assert.Equalf(t, value, record[field], "field %s changed", field)
	}
}

// fetchByID reads a single record through the public index endpoint
func (s *suite) fetchByID(t *testing.T, id int) map[string]interface{} {
	t.Helper()

	w := s.request(http.MethodGet, fmt.Sprintf("%s?_id=%d", s.res.Path, id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := s.decodeList(w)
	require.Len(t, envelope.Data, 1)
	return envelope.Data[0]
}

func (s *suite) updateNonOwner(t *testing.T) {
	w := s.request(http.MethodPut, s.res.Path+"/2", s.otherToken, gin.H{s.res.UpdateField: s.res.UpdateValue})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.PermissionDeniedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Permission Denied", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "other@example.com", resp.User.Email)
}

func (s *suite) destroy(t *testing.T) {
	if s.res.AdminOnlyDelete {
		// A non-admin is turned away first
		w := s.request(http.MethodDelete, s.res.Path+"/3", s.ownerToken, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var denied models.PermissionDeniedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &denied))
		assert.Equal(t, "Permission Denied", denied.Message)
	}

	if s.res.OwnerScoped {
		w := s.request(http.MethodDelete, s.res.Path+"/3", s.otherToken, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	token := s.ownerToken
	if s.res.AdminOnlyDelete {
		token = s.adminToken
	}

	w := s.request(http.MethodDelete, s.res.Path+"/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.EqualValues(t, 3, record["id"])

	// The record is gone afterwards
	w = s.request(http.MethodDelete, s.res.Path+"/3", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
