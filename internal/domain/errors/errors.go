package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrUserNotFound             = errors.New("user not found")
	ErrWalletNotFound           = errors.New("wallet not found")
	ErrUnauthorizedWalletAccess = errors.New("unauthorized wallet access")
	ErrNotEnoughBalance         = errors.New("not enough balance")
	ErrWalletLimitExceeded      = errors.New("wallet limit exceeded")
	ErrUnauthorized             = errors.New("unauthorized")
)

// AppError carries a domain error together with the HTTP status it maps to
// and the message exposed to the caller.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func UserNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrUserNotFound)
}

func WalletNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrWalletNotFound)
}

func UnauthorizedWalletAccess(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrUnauthorizedWalletAccess)
}

func NotEnoughBalance(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrNotEnoughBalance)
}

func WalletLimitExceeded(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrWalletLimitExceeded)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
