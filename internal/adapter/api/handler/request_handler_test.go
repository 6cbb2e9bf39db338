package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"remontkz/internal/adapter/api"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCreateRequestRejectsMissingFields(t *testing.T) {
	h := NewRequestHandler(nil)

	c, rec := newTestContext(t, http.MethodPost, "/v1/requests", `{"listing_id":"lst-1"}`)
	c.Set("uid", "client-1")

	// Validation fails before the use case is reached.
	if assert.NoError(t, h.CreateRequest(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}
}

func TestUpdateRequestStatusRejectsUnknownStatus(t *testing.T) {
	h := NewRequestHandler(nil)

	c, rec := newTestContext(t, http.MethodPut, "/v1/requests/req-1/status", `{"status":"cancelled"}`)
	c.SetParamNames("id")
	c.SetParamValues("req-1")
	c.Set("uid", "company-1")

	if assert.NoError(t, h.UpdateRequestStatus(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	}
}
