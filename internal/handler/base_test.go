package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/gostore/internal/errs"
	"github.com/wicaksn/gostore/internal/validation"
)

type echoRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *echoRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h(c)
	if err != nil {
		// Mimic the global error funnel enough for assertions.
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.NoError(t, c.JSON(httpErr.Status, httpErr))
	}
	return rec
}

func TestHandleWrapsResultInSuccessEnvelope(t *testing.T) {
	fn := Handle(Handler{}, func(c echo.Context, req *echoRequest) (map[string]string, error) {
		return map[string]string{"greeting": "hello " + req.Name}, nil
	}, http.StatusCreated, &echoRequest{})

	rec := postJSON(t, fn, `{"name":"world"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Status string            `json:"status"`
		Data   map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "hello world", body.Data["greeting"])
}

func TestHandleValidationFailureReturns400(t *testing.T) {
	fn := Handle(Handler{}, func(c echo.Context, req *echoRequest) (map[string]string, error) {
		t.Fatal("handler must not run on invalid input")
		return nil, nil
	}, http.StatusOK, &echoRequest{})

	rec := postJSON(t, fn, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDoesNotShareRequestState(t *testing.T) {
	fn := Handle(Handler{}, func(c echo.Context, req *echoRequest) (string, error) {
		return req.Name, nil
	}, http.StatusOK, &echoRequest{})

	first := postJSON(t, fn, `{"name":"alpha"}`)
	assert.Contains(t, first.Body.String(), "alpha")

	// A later request must not see the previous request's fields. The
	// second payload omits optional state by failing validation; the
	// prototype must still be pristine for the third call.
	second := postJSON(t, fn, `{"name":"beta"}`)
	assert.Contains(t, second.Body.String(), "beta")
	assert.NotContains(t, second.Body.String(), "alpha")
}

func TestHandleNoContent(t *testing.T) {
	fn := HandleNoContent(Handler{}, func(c echo.Context, req *echoRequest) error {
		return nil
	}, http.StatusNoContent, &echoRequest{})

	rec := postJSON(t, fn, `{"name":"x"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleFileSetsDownloadHeaders(t *testing.T) {
	fn := HandleFile(Handler{}, func(c echo.Context, req *echoRequest) ([]byte, error) {
		return []byte("year,month\n2026,8\n"), nil
	}, http.StatusOK, &echoRequest{}, "report.csv", "text/csv")

	rec := postJSON(t, fn, `{"name":"x"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=report.csv", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Body.String(), "2026,8")
}
