package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/guidy-app/joblight/internal/infrastructure/adapter/time"
	mockcore "github.com/guidy-app/joblight/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestExtractTableName(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{`SELECT * FROM "transactions" WHERE reference = $1`, "transactions"},
		{`INSERT INTO "wallet_entries" ("id","user_id") VALUES ($1,$2)`, "wallet_entries"},
		{`UPDATE "portfolio_stats" SET "views"=$1`, "portfolio_stats"},
		{`DELETE FROM portfolio_sections WHERE id = 3`, "portfolio_sections"},
		{`BEGIN`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTableName(tt.sql))
		})
	}
}

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select 1"))
	assert.Equal(t, "INSERT", extractQueryType("INSERT INTO x"))
	assert.Equal(t, "", extractQueryType("ALTER TABLE x"))
}

func TestDatabaseLogger_Trace(t *testing.T) {
	t.Run("tags errors with the request id", func(t *testing.T) {
		// Arrange
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-42" && fields["table"] == "wallets" && fields["error"] == "boom"
		})).Return().Once()
		l := NewDatabaseLogger(mockLogger, timeAdapter.NewRealTimeProvider(), "info")
		ctx := logger.WithRequestID(context.Background(), "req-42")

		// Act
		l.Trace(ctx, time.Now(), func() (string, int64) {
			return `SELECT * FROM "wallets" WHERE user_id = 7`, 0
		}, errors.New("boom"))

		// Assert: expectations verified by mock cleanup
	})

	t.Run("record not found is logged as a regular query", func(t *testing.T) {
		// Arrange
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Debug("SQL Query", mock.Anything).Return().Once()
		l := NewDatabaseLogger(mockLogger, timeAdapter.NewRealTimeProvider(), "info")

		// Act
		l.Trace(context.Background(), time.Now(), func() (string, int64) {
			return `SELECT * FROM "portfolios" WHERE slug = 'x'`, 0
		}, gorm.ErrRecordNotFound)
	})

	t.Run("silent level logs nothing", func(t *testing.T) {
		// Arrange
		mockLogger := mockcore.NewMockLogger(t)
		l := NewDatabaseLogger(mockLogger, timeAdapter.NewRealTimeProvider(), "silent")

		// Act
		l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	})
}
