// Package error defines domain-specific errors for the application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrMissingGoalID is returned when an operation requires a persisted
	// goal but the goal has no identifier yet.
	ErrMissingGoalID = errors.New("goal has no identifier")

	// ErrInvalidAdjustmentAmount is returned when a manual ledger
	// adjustment of zero magnitude is attempted.
	ErrInvalidAdjustmentAmount = errors.New("adjustment amount must be non-zero")

	// ErrWithdrawalNotAllowed is returned when a withdrawal is applied to
	// a debt goal; debts only record payments.
	ErrWithdrawalNotAllowed = errors.New("withdrawals are not allowed for debt goals")

	// ErrInvalidGoalKind is returned when the goal kind is invalid.
	ErrInvalidGoalKind = errors.New("invalid goal kind")

	// ErrInvalidTargetAmount is returned when the target amount is negative.
	ErrInvalidTargetAmount = errors.New("target amount must not be negative")

	// ErrInvalidDateRange is returned when the target date precedes the start date.
	ErrInvalidDateRange = errors.New("target date must not precede start date")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound            GoalErrorCode = "GOL-010001"
	ErrCodeMissingGoalID           GoalErrorCode = "GOL-010002"
	ErrCodeInvalidAdjustmentAmount GoalErrorCode = "GOL-010003"
	ErrCodeWithdrawalNotAllowed    GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalKind         GoalErrorCode = "GOL-010005"
	ErrCodeInvalidTargetAmount     GoalErrorCode = "GOL-010006"
	ErrCodeInvalidDateRange        GoalErrorCode = "GOL-010007"
	ErrCodeUnauthorizedGoalAccess  GoalErrorCode = "GOL-010008"
	ErrCodeMissingGoalFields       GoalErrorCode = "GOL-010009"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
