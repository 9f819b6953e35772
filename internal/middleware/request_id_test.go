package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/gostore/internal/validation"
)

func runRequestID(t *testing.T, incomingID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incomingID != "" {
		req.Header.Set(RequestIDHeader, incomingID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return c, rec
}

func TestRequestIDGenerated(t *testing.T) {
	c, rec := runRequestID(t, "")

	id := GetRequestID(c)
	assert.True(t, validation.IsValidUUID(id))
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDReused(t *testing.T) {
	c, rec := runRequestID(t, "client-supplied-id")

	assert.Equal(t, "client-supplied-id", GetRequestID(c))
	assert.Equal(t, "client-supplied-id", rec.Header().Get(RequestIDHeader))
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, "", GetRequestID(c))
}
