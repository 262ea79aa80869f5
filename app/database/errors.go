package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrorKind is the closed set of failure categories the storage layer
// reports. Handlers map kinds to HTTP responses instead of inspecting
// driver message text.
type ErrorKind string

const (
	KindConnection ErrorKind = "connection"
	KindAuth       ErrorKind = "authentication"
	KindSchema     ErrorKind = "schema"
	KindConstraint ErrorKind = "constraint"
	KindSyntax     ErrorKind = "syntax"
	KindNotFound   ErrorKind = "not_found"
	KindValidation ErrorKind = "validation"
	KindUnknown    ErrorKind = "unknown"
)

// Error wraps an underlying failure with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds a not-found error for a named entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Err: fmt.Errorf("%s not found", entity)}
}

// Validation builds a validation error from a message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Err: errors.New(msg)}
}

// Classify maps a raw database error to an *Error with a kind derived from
// the PostgreSQL SQLSTATE class, never from message substrings.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Kind: KindNotFound, Err: err}
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return &Error{Kind: KindConnection, Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08": // connection exception
			return &Error{Kind: KindConnection, Err: err}
		case "28": // invalid authorization
			return &Error{Kind: KindAuth, Err: err}
		case "23": // integrity constraint violation
			return &Error{Kind: KindConstraint, Err: err}
		case "22": // data exception (bad value for column type)
			return &Error{Kind: KindValidation, Err: err}
		case "42":
			// undefined_table / undefined_column are schema drift;
			// the rest of class 42 is malformed SQL
			switch pqErr.Code {
			case "42P01", "42703", "42704":
				return &Error{Kind: KindSchema, Err: err}
			}
			return &Error{Kind: KindSyntax, Err: err}
		case "3D", "3F": // invalid catalog/schema name
			return &Error{Kind: KindSchema, Err: err}
		case "53", "57", "58": // resources, operator intervention, system
			return &Error{Kind: KindConnection, Err: err}
		}
	}

	return &Error{Kind: KindUnknown, Err: err}
}

// Severity reports how serious a kind is for the error envelope.
func (k ErrorKind) Severity() string {
	switch k {
	case KindConnection:
		return "critical"
	case KindAuth:
		return "high"
	default:
		return "medium"
	}
}

// Suggestion returns a remediation hint for the error envelope.
func (k ErrorKind) Suggestion() string {
	switch k {
	case KindConnection:
		return "Check that PostgreSQL is running and connection settings are correct"
	case KindAuth:
		return "Verify database credentials in the environment"
	case KindSchema:
		return "Restart the application so schema bootstrap can run, or apply migrations manually"
	case KindConstraint:
		return "Check for duplicate data or missing referenced records"
	case KindSyntax:
		return "Review the SQL query and table structure"
	case KindValidation:
		return "Correct the highlighted fields and retry"
	case KindNotFound:
		return "The record may already have been deleted; refresh and retry"
	default:
		return "Check the server logs for details"
	}
}
