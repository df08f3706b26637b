package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"spendtrack/internal/api/routes"
	"spendtrack/internal/models"
	"spendtrack/internal/testutil"
	"spendtrack/internal/testutil/resttest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyResource(t *testing.T) {
	resttest.Run(t, resttest.Resource{
		Name:  "Currency",
		Path:  "/api/currencies",
		Table: "currencies",
		Seed: func(tc *testutil.TestContext, owner *models.User, n int) {
			for i := 0; i < n; i++ {
				tc.CreateTestCurrency(
					fmt.Sprintf("Test Currency %02d", i),
					fmt.Sprintf("T%02d", i),
				)
			}
		},
		ValidPayload: func(i int) gin.H {
			return gin.H{
				"name":    fmt.Sprintf("Payload Currency %03d", i),
				"acronym": fmt.Sprintf("P%02d", i%100),
			}
		},
		RequiredFields:    []string{"name", "acronym"},
		ExactLengthFields: map[string]int{"acronym": 3},
		UpdateField:       "name",
		UpdateValue:       "Renamed Currency",
		AdminOnlyDelete:   true,
	})
}

func TestCurrencyFilters(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := routes.SetupRoutes(tc.Config, tc.DB)

	tc.TruncateTable("currencies")
	tc.CreateTestCurrency("Nigerian Naira", "NGN")
	tc.CreateTestCurrency("United States Dollar", "USD")
	tc.CreateTestCurrency("Canadian Dollar", "CAD")
	tc.CreateTestCurrency("British Pound Sterling", "GBP")

	tests := []struct {
		name         string
		query        string
		wantAcronyms []string
	}{
		{"substring on name", "?name=dollar", []string{"USD", "CAD"}},
		{"substring on acronym", "?acronym=gb", []string{"GBP"}},
		{"conjunctive filters", "?name=dollar&acronym=ca", []string{"CAD"}},
		{"no match", "?name=franc", []string{}},
		{"exact id", "?_id=1", []string{"NGN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/api/currencies"+tt.query, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var envelope models.ListResponse[models.Currency]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

			acronyms := make([]string, 0, len(envelope.Data))
			for _, currency := range envelope.Data {
				acronyms = append(acronyms, currency.Acronym)
			}
			assert.Equal(t, tt.wantAcronyms, acronyms)
			assert.Equal(t, len(tt.wantAcronyms), envelope.Meta.Total)
		})
	}
}

func TestCurrencyNotFoundEchoesRawID(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := routes.SetupRoutes(tc.Config, tc.DB)

	user := tc.CreateTestUser("User", "user@example.com", "password123", models.UserTypeStandard)
	token := tc.GetTestJWT(user.ID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/currencies/not-a-number", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Currency with ID not-a-number not found", resp.Errors[0])
}

func TestCurrencySeededDefaults(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := routes.SetupRoutes(tc.Config, tc.DB)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/currencies", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope models.ListResponse[models.Currency]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	acronyms := make(map[string]bool)
	for _, currency := range envelope.Data {
		acronyms[currency.Acronym] = true
	}
	for _, want := range []string{"NGN", "USD", "CAD", "GBP"} {
		assert.Truef(t, acronyms[want], "expected seeded currency %s", want)
	}
}
