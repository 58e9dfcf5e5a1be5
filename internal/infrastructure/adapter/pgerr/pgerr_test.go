package pgerr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Other},
		{"no rows", gorm.ErrRecordNotFound, Missing},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "idx_wallet_entries_kind_reference"}, Duplicate},
		{"wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), Duplicate},
		{"check", &pgconn.PgError{Code: "23514"}, Constraint},
		{"foreign key", &pgconn.PgError{Code: "23503"}, Constraint},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, Conflict},
		{"serialization", &pgconn.PgError{Code: "40001"}, Conflict},
		{"canceled statement", &pgconn.PgError{Code: "57014"}, Timeout},
		{"connection failure", &pgconn.PgError{Code: "08006"}, Unavailable},
		{"too many clients", &pgconn.PgError{Code: "53300"}, Unavailable},
		{"syntax", &pgconn.PgError{Code: "42601"}, Other},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"eof", io.ErrUnexpectedEOF, Unavailable},
		{"reset", fmt.Errorf("read: %w", syscall.ECONNRESET), Unavailable},
		{"text duplicate", errors.New(`duplicate key value violates unique constraint "idx_portfolios_slug"`), Duplicate},
		{"text check", errors.New(`new row violates check constraint "chk_wallets_tokens"`), Constraint},
		{"text refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), Unavailable},
		{"plain", errors.New("boom"), Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err), Classify(tt.err).String())
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, Retryable(syscall.ECONNREFUSED))
	assert.False(t, Retryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, Retryable(context.DeadlineExceeded))
	assert.False(t, Retryable(nil))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"missing", gorm.ErrRecordNotFound, errs.ErrNotFound},
		{"duplicate", &pgconn.PgError{Code: "23505"}, errs.ErrDuplicateReference},
		{"constraint", &pgconn.PgError{Code: "23514"}, errs.ErrConstraintViolation},
		{"conflict", &pgconn.PgError{Code: "40001"}, errs.ErrDatabaseConnection},
		{"timeout", context.DeadlineExceeded, errs.ErrDatabaseConnection},
		{"other", errors.New("syntax error"), errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Wrap("save wallet", tt.err), tt.want)
		})
	}

	assert.NoError(t, Wrap("noop", nil))
}
