// Package error defines domain-specific errors for the application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrTransactionCategoryNotFound is returned when the referenced category does not exist.
	ErrTransactionCategoryNotFound = errors.New("category not found")

	// ErrUnauthorizedTransactionAccess is returned when user is not authorized to access a transaction.
	ErrUnauthorizedTransactionAccess = errors.New("unauthorized access to transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound           TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType        TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionDate        TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionCategoryNotFound   TransactionErrorCode = "TXN-010004"
	ErrCodeUnauthorizedTransactionAccess TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields      TransactionErrorCode = "TXN-010006"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
