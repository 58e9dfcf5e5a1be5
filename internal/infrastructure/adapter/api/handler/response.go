package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsValidationError(err),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrNegativeAmount),
		errors.Is(err, errs.ErrAmountOverflow),
		errors.Is(err, errs.ErrUnsupportedCurrency),
		errors.Is(err, errs.ErrInvalidUserID),
		errors.Is(err, errs.ErrInvalidPlatform),
		errors.Is(err, errs.ErrUnknownService),
		errors.Is(err, errs.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrCapabilityNotSupported):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInsufficientTokens):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrUnverified), errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrProviderNotFound), errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateReference), errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrShuttingDown):
		return http.StatusServiceUnavailable
	case errs.IsProviderError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Server errors get a generic message; the detail is logged.
func respondError(c *gin.Context, log coreport.Logger, err error) {
	status := StatusCode(err)

	fields := errs.LogFields(err)
	fields["error"] = err.Error()
	fields["path"] = c.Request.URL.Path
	fields["status"] = status
	fields["request_id"] = logger.RequestID(c.Request.Context())
	if userID, ok := middleware.UserID(c); ok {
		fields["user_id"] = userID
	}
	_ = c.Error(err)

	message := err.Error()
	switch {
	case status == http.StatusBadGateway:
		log.Error("Payment provider call failed", fields)
		message = "Payment provider is unavailable, please retry later"
	case status >= 500:
		log.Error("Request failed", fields)
		message = "Internal server error"
	default:
		log.Debug("Request rejected", fields)
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// respondBindError answers a request whose body or query failed to bind
func respondBindError(c *gin.Context, err error) {
	if fields := dto.FieldErrors(err); fields != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    errs.CodeValidation,
			Message: "Validation failed",
			Fields:  fields,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeValidation,
		Message: "Invalid request format",
	})
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.OK(data))
}

// currentUser returns the authenticated user id or answers 401
func currentUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    errs.CodeUnauthenticated,
			Message: "Authentication required",
		})
	}
	return userID, ok
}

// uintParam parses a positive integer path parameter or answers 422
func uintParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    errs.CodeValidation,
			Message: "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}
