// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and converts
// them into user-friendly messages (e.g., converting a "foreign key
// violation" into a "Bad Request" error).
package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a friendly category for a Postgres SQLSTATE.
type Code int

const (
	// Other covers every SQLSTATE not mapped explicitly.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	SerializationFailure
	DeadlockDetected
	ConnectionFailure
)

// Severity mirrors the Postgres error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapCode maps a SQLSTATE string onto a Code.
//
// SQLSTATE class 23 is integrity constraint violation; 40 is
// transaction rollback; 08 is connection exception.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "40001":
		return SerializationFailure
	case "40P01":
		return DeadlockDetected
	}

	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps the Postgres severity string onto a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	}
	return SeverityUnknown
}

// Error is the normalized form of a Postgres server error. It keeps
// the original driver error for Unwrap while exposing the fields the
// rest of the application switches on.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlerr: %s (SQLSTATE %s)", e.Message, e.DatabaseCode)
}

// Unwrap exposes the original pgconn error to errors.As/Is.
func (e *Error) Unwrap() error {
	if e.driverErr == nil {
		return nil
	}
	return e.driverErr
}
