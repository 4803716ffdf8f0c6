package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service unavailable")
	ErrInternal     = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

// Unwrap exposes both the base sentinel and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.BaseError}
	}
	return []error{e.BaseError, e.Err}
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

func NewUnavailable(details string, err error) *AppError {
	return NewAppError(ErrUnavailable, "A dependency is unavailable", details, err)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	body := gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
	if errors.Is(e.BaseError, ErrInvalidInput) && e.Err != nil {
		body["details"] = e.Err.Error()
	}
	return body
}
