package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidDueDate       = errors.New("invalid due date")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeAccountNotFound      = "ACCOUNT_NOT_FOUND"
	ErrCodeAccountAlreadyExists = "ACCOUNT_ALREADY_EXISTS"
	ErrCodeInvalidDueDate       = "INVALID_DUE_DATE"
	ErrCodeDatabaseError        = "DATABASE_ERROR"
	ErrCodeTransportError       = "TRANSPORT_ERROR"
	ErrCodeCacheError           = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapAccountNotFound(accountID string) *BusinessError {
	return NewBusinessError(
		ErrCodeAccountNotFound,
		fmt.Sprintf("Account %s not found", accountID),
		ErrAccountNotFound,
	)
}

func WrapAccountAlreadyExists(accountNumber string) *BusinessError {
	return NewBusinessError(
		ErrCodeAccountAlreadyExists,
		fmt.Sprintf("Account with number %s already exists", accountNumber),
		ErrAccountAlreadyExists,
	)
}

func WrapInvalidDueDate(text string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDueDate,
		fmt.Sprintf("Due date %q is not in d/M/yyyy form", text),
		ErrInvalidDueDate,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapTransportError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeTransportError,
		"message delivery failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
