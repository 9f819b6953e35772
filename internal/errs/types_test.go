package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewNotFoundError("Order not found", true, nil)

	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(err, errors.New("plain")))
}

func TestWithMessageCopies(t *testing.T) {
	base := NewConflictError("template", true, nil)
	derived := base.WithMessage("specific")

	assert.Equal(t, "template", base.Message)
	assert.Equal(t, "specific", derived.Message)
	assert.Equal(t, base.Status, derived.Status)
}

func TestConstructorsSetStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("x", false).Status)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("x", false).Status)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("x", false, nil, nil, nil).Status)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x", false, nil).Status)
	assert.Equal(t, http.StatusConflict, NewConflictError("x", false, nil).Status)
	assert.Equal(t, http.StatusInternalServerError, NewInternalServerError().Status)
}
