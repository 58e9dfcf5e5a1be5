package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation             = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeDuplicateReference     = 4004
	CodeConstraintViolation    = 4005
	CodeAmountOverflow         = 4006
	CodeCapabilityNotSupported = 4007
	CodeInvalidPlatform        = 4008
	CodeUnknownService         = 4009
	CodeUnauthenticated        = 4010
	CodeInsufficientTokens     = 4020
	CodeUnverified             = 4030
	CodeForbidden              = 4031
	CodeNotFound               = 4040
	CodeProviderNotFound       = 4041
	CodeInvalidTransition      = 4090
	CodeInvalidSignature       = 4011

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeProviderFailure = 5020
)

// Base error types
var (
	// ErrValidation is returned when request input fails validation rules
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrUnsupportedCurrency is returned when a currency is not known
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidReference is returned when a transaction reference is empty or malformed
	ErrInvalidReference = errors.New("transaction reference cannot be empty")

	// ErrDuplicateReference is returned when a transaction with the same reference already exists
	ErrDuplicateReference = errors.New("transaction with this reference already exists")

	// ErrInvalidTransition is returned when a transaction status change is not allowed
	ErrInvalidTransition = errors.New("invalid transaction status transition")

	// ErrInsufficientTokens is returned when a wallet cannot cover a debit
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// ErrProviderNotFound is returned when a provider is unknown or disabled
	ErrProviderNotFound = errors.New("payment provider not found")

	// ErrCapabilityNotSupported is returned when a provider does not implement an operation
	ErrCapabilityNotSupported = errors.New("operation not supported by provider")

	// ErrProviderFailure is returned when a provider call fails
	ErrProviderFailure = errors.New("payment provider failure")

	// ErrInvalidSignature is returned when a provider notification cannot be authenticated
	ErrInvalidSignature = errors.New("invalid notification signature")

	// ErrInvalidPlatform is returned for an unknown share platform
	ErrInvalidPlatform = errors.New("invalid share platform")

	// ErrUnknownService is returned for an AI service or token pack missing from the catalogue
	ErrUnknownService = errors.New("unknown AI service")

	// ErrUnauthenticated is returned when a request carries no valid credentials
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnverified is returned when the user's email is not verified
	ErrUnverified = errors.New("email address not verified")

	// ErrForbidden is returned when the caller may not act on the requested resource
	ErrForbidden = errors.New("operation not permitted")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPortfolioNotFound is returned when a portfolio doesn't exist or isn't public
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrSectionNotFound is returned when a portfolio section doesn't exist
	ErrSectionNotFound = errors.New("section not found")

	// ErrTemplateNotFound is returned when a CV template doesn't exist
	ErrTemplateNotFound = errors.New("cv template not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrShuttingDown is returned when work is submitted after shutdown started
	ErrShuttingDown = errors.New("service is shutting down")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientTokens):
		return CodeInsufficientTokens
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrUnsupportedCurrency):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidReference):
		return CodeValidation
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	case errors.Is(err, ErrCapabilityNotSupported):
		return CodeCapabilityNotSupported
	case errors.Is(err, ErrInvalidPlatform):
		return CodeInvalidPlatform
	case errors.Is(err, ErrUnknownService):
		return CodeUnknownService
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrUnverified):
		return CodeUnverified
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrProviderNotFound):
		return CodeProviderNotFound
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrProviderFailure):
		return CodeProviderFailure
	default:
		return CodeInternalServer
	}
}

// ProviderError describes a failed call to an external payment provider
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Code       string
	Message    string
	Transient  bool
}

// Error implements the error interface for ProviderError
func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s failed (http %d, code %s): %s", e.Provider, e.Operation, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s failed (http %d): %s", e.Provider, e.Operation, e.StatusCode, e.Message)
}

// Is reports ErrProviderFailure as the base error
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailure
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "provider_error",
		"provider":      e.Provider,
		"operation":     e.Operation,
		"http_status":   e.StatusCode,
		"provider_code": e.Code,
		"message":       e.Message,
		"transient":     e.Transient,
		"error_code":    CodeProviderFailure,
	}
}

// NewProviderError creates a provider error; 5xx and transport failures (status 0) are transient
func NewProviderError(provider, operation string, statusCode int, code, message string) error {
	return &ProviderError{
		Provider:   provider,
		Operation:  operation,
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Transient:  statusCode == 0 || statusCode >= 500,
	}
}

// ValidationError carries per-field validation messages
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// Is reports ErrValidation as the base error
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"fields":     e.Fields,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// InsufficientTokensError provides detailed error information for a rejected debit
type InsufficientTokensError struct {
	UserID    uint64
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("insufficient tokens for user %d: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientTokens
func (e *InsufficientTokensError) Is(target error) bool {
	return target == ErrInsufficientTokens
}

// Missing returns how many tokens the wallet lacks
func (e *InsufficientTokensError) Missing() int64 {
	return e.Required - e.Available
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientTokensError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_tokens",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientTokens,
	}
}

// NewInsufficientTokensError creates a new detailed insufficient tokens error
func NewInsufficientTokensError(userID uint64, required, available int64) error {
	return &InsufficientTokensError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// TransitionError describes a rejected transaction status change
type TransitionError struct {
	Reference string
	From      string
	To        string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("transaction %s cannot move from %s to %s", e.Reference, e.From, e.To)
}

// Unwrap returns the underlying error
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_transition",
		"reference":  e.Reference,
		"from":       e.From,
		"to":         e.To,
		"error_code": CodeInvalidTransition,
	}
}

// NewTransitionError creates a new transition error
func NewTransitionError(reference, from, to string) error {
	return &TransitionError{Reference: reference, From: from, To: to}
}

// LogFields extracts structured fields from err when it carries them
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{"error": err.Error()}
}

// IsInsufficientTokensError checks if the error is related to insufficient tokens
func IsInsufficientTokensError(err error) bool {
	return errors.Is(err, ErrInsufficientTokens)
}

// IsProviderError checks if the error came from a payment provider
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProviderFailure)
}

// IsTransientProviderError reports whether a provider failure may succeed on retry
func IsTransientProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Transient
}

// IsValidationError checks if the error is a client input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrUnsupportedCurrency) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrInvalidPlatform) ||
		errors.Is(err, ErrUnknownService)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrPortfolioNotFound) ||
		errors.Is(err, ErrSectionNotFound) ||
		errors.Is(err, ErrTemplateNotFound)
}
