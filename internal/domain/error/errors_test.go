package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientTokens.Error() != "insufficient tokens" {
		t.Errorf("ErrInsufficientTokens has unexpected message: %s", ErrInsufficientTokens.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientTokens", ErrInsufficientTokens, 4020},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateReference", ErrDuplicateReference, 4004},
		{"Validation", NewValidationError("phone", "bad"), 4001},
		{"CapabilityNotSupported", ErrCapabilityNotSupported, 4007},
		{"ProviderNotFound", ErrProviderNotFound, 4041},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"PortfolioNotFound", ErrPortfolioNotFound, 4040},
		{"InvalidTransition", NewTransitionError("JLabc", "success", "failed"), 4090},
		{"ProviderFailure", NewProviderError("fapshi", "payout", 500, "", "boom"), 5020},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"Forbidden", ErrForbidden, 4031},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestProviderError(t *testing.T) {
	err := NewProviderError("cinetpay", "initiate", 502, "", "bad gateway")

	if !errors.Is(err, ErrProviderFailure) {
		t.Errorf("errors.Is(err, ErrProviderFailure) = false, want true")
	}
	if !IsTransientProviderError(err) {
		t.Errorf("IsTransientProviderError(502) = false, want true")
	}

	permanent := NewProviderError("cinetpay", "initiate", 400, "608", "minimum amount")
	if IsTransientProviderError(permanent) {
		t.Errorf("IsTransientProviderError(400) = true, want false")
	}

	expected := "cinetpay initiate failed (http 400, code 608): minimum amount"
	if permanent.Error() != expected {
		t.Errorf("ProviderError.Error() = %s, want %s", permanent.Error(), expected)
	}

	network := NewProviderError("fapshi", "status", 0, "", "connection refused")
	if !IsTransientProviderError(network) {
		t.Errorf("IsTransientProviderError(network) = false, want true")
	}
}

func TestInsufficientTokensError(t *testing.T) {
	err := NewInsufficientTokensError(789, 300, 150)

	expectedErrMsg := "insufficient tokens for user 789: required 300, available 150"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientTokensError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsInsufficientTokensError(fmt.Errorf("debit: %w", err)) {
		t.Errorf("IsInsufficientTokensError(wrapped) = false, want true")
	}

	var detailed *InsufficientTokensError
	if !errors.As(err, &detailed) {
		t.Fatalf("errors.As failed: not a *InsufficientTokensError")
	}
	if detailed.Missing() != 150 {
		t.Errorf("Missing() = %d, want 150", detailed.Missing())
	}
}

func TestTransitionError(t *testing.T) {
	err := NewTransitionError("JL123", "failed", "success")

	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("errors.Is(err, ErrInvalidTransition) = false, want true")
	}

	fields := LogFields(err)
	if fields["from"] != "failed" || fields["to"] != "success" {
		t.Errorf("LogFields() = %v, want from/to populated", fields)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsInsufficientTokensError(ErrInvalidUserID) {
		t.Errorf("IsInsufficientTokensError(ErrInvalidUserID) = true, want false")
	}

	if !IsValidationError(fmt.Errorf("wrapped: %w", ErrInvalidPlatform)) {
		t.Errorf("IsValidationError(ErrInvalidPlatform) = false, want true")
	}

	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrSectionNotFound)) {
		t.Errorf("IsNotFoundError(ErrSectionNotFound) = false, want true")
	}

	if IsNotFoundError(ErrProviderFailure) {
		t.Errorf("IsNotFoundError(ErrProviderFailure) = true, want false")
	}

	fields := LogFields(errors.New("plain"))
	if fields["error"] != "plain" {
		t.Errorf("LogFields(plain) = %v, want error message", fields)
	}
}
