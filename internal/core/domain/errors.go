// Package domain defines the client-side domain models for moneytracker.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a local domain error with a structured error code.
//
// Error() yields the human-readable message only, so callers that match on
// the message text see exactly the fixed strings below.
type DomainError struct {
	Code    string // Error code (e.g., "MT-AUTH-4010")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrInvalidCredentials is returned by mock login for any pair other than the demo account.
	ErrInvalidCredentials = NewDomainError("MT-AUTH-4010", "Invalid email or password")

	// ErrEmailExists is returned by mock register for the reserved sentinel address.
	ErrEmailExists = NewDomainError("MT-AUTH-4090", "Email already exists")
)

// ============================================================================
// Resource Errors (RES)
// ============================================================================

var (
	// ErrWalletNotFound indicates the wallet does not exist in the active source.
	ErrWalletNotFound = NewDomainError("MT-RES-4041", "Wallet not found")

	// ErrTargetWalletNotFound indicates a transfer target that does not exist.
	ErrTargetWalletNotFound = NewDomainError("MT-RES-4042", "Target wallet not found")

	// ErrTransactionNotFound indicates the transaction does not exist.
	ErrTransactionNotFound = NewDomainError("MT-RES-4043", "Transaction not found")

	// ErrCategoryNotFound indicates the category does not exist.
	ErrCategoryNotFound = NewDomainError("MT-RES-4044", "Category not found")

	// ErrSelfTransfer indicates a transfer whose source and target are the same wallet.
	ErrSelfTransfer = NewDomainError("MT-RES-4001", "Cannot transfer wallet to itself")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("MT-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("MT-ARG-1002", "missing required argument")
)
