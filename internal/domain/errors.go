package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

// AppError is an application error carrying a stable code.
type AppError struct {
	Code    errcodes.Code
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches two AppErrors by code, so errors.Is works against the
// sentinel values below.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.cause == nil
}

func NewError(code errcodes.Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code errcodes.Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode returns the code of the outermost AppError in the chain.
func GetCode(err error) (errcodes.Code, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// IsTransient reports whether err is worth retrying later without any
// change on our side.
func IsTransient(err error) bool {
	code, ok := GetCode(err)
	if !ok {
		return errors.Is(err, context.DeadlineExceeded)
	}

	switch code {
	case errcodes.FeedUnavailable, errcodes.FeedRateLimited, errcodes.FeedServerError, errcodes.TimeoutExceeded:
		return true
	default:
		return false
	}
}

var (
	ErrCalculationInProgress = NewError(errcodes.CalculationInProgress, "calculation already in progress")
	ErrNoResults             = NewError(errcodes.NoResults, "no results")
)
