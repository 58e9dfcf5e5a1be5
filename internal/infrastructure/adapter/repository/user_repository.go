package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:              userModel.ID,
		Name:            userModel.Name,
		Email:           userModel.Email,
		Phone:           userModel.Phone,
		Username:        userModel.Username,
		PhotoURL:        userModel.PhotoURL,
		EmailVerifiedAt: userModel.EmailVerifiedAt,
		CreatedAt:       userModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", map[string]any{
			"key": key,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	return pgerr.Wrap("user", err)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	if id == 0 {
		return nil, errs.ErrUserNotFound
	}

	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by username, case-insensitively
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrUserNotFound
	}

	var userModel model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user by username", err, username)
	}
	return r.modelToEntity(&userModel), nil
}

// CVRepository implements CVRepository interface using GORM
type CVRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCVRepository creates a new CVRepository instance
func NewCVRepository(db *gorm.DB, logger coreport.Logger) *CVRepository {
	return &CVRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUserID returns the CV of a user; a user without a CV gets an empty document
func (r *CVRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.CVData, error) {
	var doc model.CVDocument
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&doc)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.CVData{UserID: userID}, nil
		}
		r.logger.Error("Failed to get CV document", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, pgerr.Wrap("user", result.Error)
	}

	cv := &entity.CVData{}
	if len(doc.Data) > 0 {
		if err := json.Unmarshal(doc.Data, cv); err != nil {
			r.logger.Error("Corrupt CV document", map[string]any{
				"user_id": userID,
				"error":   err,
			})
			return nil, fmt.Errorf("%w: corrupt cv document: %s", errs.ErrInternalServer, err.Error())
		}
	}
	cv.UserID = userID
	return cv, nil
}
