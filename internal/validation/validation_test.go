package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/gostore/internal/errs"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

func (r *sampleRequest) Validate() error {
	return Validator.Struct(r)
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(`{"email":"a@b.com","quantity":3}`)

	payload := &sampleRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "a@b.com", payload.Email)
	assert.Equal(t, 3, payload.Quantity)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(`{"email":"not-an-email","quantity":-1}`)

	err := BindAndValidate(c, &sampleRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)

	fields := []string{httpErr.Errors[0].Field, httpErr.Errors[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "quantity")
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(`{"email":`)

	err := BindAndValidate(c, &sampleRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(`{}`)

	err := BindAndValidate(c, &customRuleRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "price", httpErr.Errors[0].Field)
}

type customRuleRequest struct {
	Price string `json:"price"`
}

func (r *customRuleRequest) Validate() error {
	if r.Price == "" {
		return CustomValidationErrors{
			{Field: "price", Message: "must be set"},
		}
	}
	return nil
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("a2f7c8e0-1b3d-4f5a-9c8e-0d1b3d4f5a9c"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}
