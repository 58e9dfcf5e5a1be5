// Package pgerr sorts PostgreSQL driver errors into the few outcomes the
// repositories act on.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the outcome class of a failed statement
type Kind int

const (
	// Other is anything not listed below, usually a bug in the statement
	Other Kind = iota
	// Missing means no row matched
	Missing
	// Duplicate is a unique index violation
	Duplicate
	// Constraint is a check, foreign key or not-null violation
	Constraint
	// Conflict is a deadlock, serialization failure or lock wait abort
	Conflict
	// Unavailable means the server could not be reached or dropped the connection
	Unavailable
	// Timeout means the statement or its context ran out of time
	Timeout
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Duplicate:
		return "duplicate"
	case Constraint:
		return "constraint"
	case Conflict:
		return "conflict"
	case Unavailable:
		return "unavailable"
	case Timeout:
		return "timeout"
	}
	return "other"
}

// Classify inspects err, preferring the SQLSTATE when the server sent one
func Classify(err error) Kind {
	if err == nil {
		return Other
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Missing
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EPIPE):
		return Unavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return Timeout
		}
		return Unavailable
	}

	// Errors that crossed a string boundary, for instance from gorm's callbacks
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"):
		return Duplicate
	case strings.Contains(msg, "deadlock"), strings.Contains(msg, "could not serialize"):
		return Conflict
	case strings.Contains(msg, "violates"):
		return Constraint
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"), strings.Contains(msg, "server closed"):
		return Unavailable
	}
	return Other
}

func classifyCode(code string) Kind {
	switch code {
	case "23505":
		return Duplicate
	case "23502", "23503", "23514", "23P01":
		return Constraint
	case "40001", "40P01", "55P03":
		return Conflict
	case "57014":
		return Timeout
	case "53300", "57P01", "57P02", "57P03":
		return Unavailable
	}
	if strings.HasPrefix(code, "08") {
		return Unavailable
	}
	return Other
}

// IsDuplicate reports a unique index violation
func IsDuplicate(err error) bool {
	return Classify(err) == Duplicate
}

// Retryable reports whether running the same statement again may succeed
func Retryable(err error) bool {
	switch Classify(err) {
	case Conflict, Unavailable:
		return true
	}
	return false
}

// Wrap maps err onto the domain's database sentinels. op names the failed
// operation in the message. Missing rows map to errs.ErrNotFound; callers
// that know the entity check for Missing first.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	switch Classify(err) {
	case Missing:
		return errs.ErrNotFound
	case Duplicate:
		return fmt.Errorf("%s: %w", op, errs.ErrDuplicateReference)
	case Constraint:
		return fmt.Errorf("%s: %w: %s", op, errs.ErrConstraintViolation, err.Error())
	case Conflict, Unavailable, Timeout:
		return fmt.Errorf("%s: %w: %s", op, errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%s: %w: %s", op, errs.ErrInternalServer, err.Error())
}
