package sqlerr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/gostore/internal/errs"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"40001", SerializationFailure},
		{"40P01", DeadlockDetected},
		{"08006", ConnectionFailure},
		{"42P01", Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCode(tt.sqlstate), tt.sqlstate)
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "products",
		ConstraintName: "products_sku_key",
	}

	err := HandleError(pgerr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "A Product with this Sku already exists", httpErr.Message)
	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", httpErr.Code)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:      "23503",
		Severity:  "ERROR",
		TableName: "order_items",
	}

	err := HandleError(pgerr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHandleErrorNoRowsWithTableAnnotation(t *testing.T) {
	err := HandleError(fmt.Errorf("table:orders: %w", pgx.ErrNoRows))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Order not found", httpErr.Message)
}

func TestHandleErrorNoRowsWithoutAnnotation(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorUnknownErrorIsSanitized(t *testing.T) {
	err := HandleError(fmt.Errorf("connection reset by peer"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "peer")
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewConflictError("Order is already paid", true, nil)

	err := HandleError(original)

	assert.Same(t, original, err)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "sku", extractColumnForUniqueViolation("products_sku_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("orders_pkey"))
}
