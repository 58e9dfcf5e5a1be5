package persistence

import (
	"context"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// UserRepository reads account data owned by the account service
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username, case-insensitively
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// CVRepository reads the CV document of a user
type CVRepository interface {
	// GetByUserID returns the CV of a user; a user without a CV gets an empty document
	GetByUserID(ctx context.Context, userID uint64) (*entity.CVData, error)
}
