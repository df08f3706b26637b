package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"spendtrack/internal/models"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Initialize()
}

func bindJSON(t *testing.T, body string, obj interface{}) (*gin.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w, c.ShouldBindJSON(obj)
}

func TestHandleBindError_MissingFields(t *testing.T) {
	var req models.CreateCurrencyRequest
	c, w, err := bindJSON(t, `{}`, &req)
	require.Error(t, err)

	HandleBindError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "The given data was invalid.", resp.Message)
	assert.Equal(t, []string{"The name field is required."}, resp.Errors["name"])
	assert.Equal(t, []string{"The acronym field is required."}, resp.Errors["acronym"])
}

func TestHandleBindError_AcronymLength(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"too short", `{"name":"Euro","acronym":"EU"}`},
		{"too long", `{"name":"Euro","acronym":"EURO"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req models.CreateCurrencyRequest
			c, w, err := bindJSON(t, tt.payload, &req)
			require.Error(t, err)

			HandleBindError(c, err)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var resp models.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, []string{"The acronym must be 3 characters."}, resp.Errors["acronym"])
		})
	}
}

func TestHandleBindError_MalformedJSON(t *testing.T) {
	var req models.CreateCurrencyRequest
	c, w, err := bindJSON(t, `{"name":`, &req)
	require.Error(t, err)

	HandleBindError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleBindError_EmptyUpdateName(t *testing.T) {
	var req models.UpdateCurrencyRequest
	c, w, err := bindJSON(t, `{"name":""}`, &req)
	require.Error(t, err)

	HandleBindError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"The name field is required."}, resp.Errors["name"])
}

func TestHandleBindError_InvalidEmail(t *testing.T) {
	var req models.RegisterRequest
	c, w, err := bindJSON(t, `{"name":"Test","email":"nope","password":"password123"}`, &req)
	require.Error(t, err)

	HandleBindError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"The email must be a valid email address."}, resp.Errors["email"])
}
