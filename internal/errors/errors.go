package errors

import (
	stderrors "errors"
	"fmt"

	"xlfilter/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    GetCode(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the code of the outermost AppError, the code of a wrapped
// domain error, or INTERNAL_ERROR
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	for _, m := range domainCodes {
		if stderrors.Is(err, m.sentinel) {
			return m.code
		}
	}
	return CodeInternalError
}

// Predefined error codes
const (
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeFileOpen          = "FILE_OPEN"
	CodeUnsupportedLayout = "UNSUPPORTED_LAYOUT"
	CodeEmptyHeaderSet    = "EMPTY_HEADER_SET"
	CodeNoSelection       = "NO_SELECTION"
	CodeNoMatches         = "NO_MATCHES"
	CodeFileWrite         = "FILE_WRITE"
	CodeInvalidColumn     = "INVALID_COLUMN"
)

var domainCodes = []struct {
	sentinel error
	code     string
}{
	{core.ErrFileOpen, CodeFileOpen},
	{core.ErrUnsupportedLayout, CodeUnsupportedLayout},
	{core.ErrEmptyHeaderSet, CodeEmptyHeaderSet},
	{core.ErrNoSelection, CodeNoSelection},
	{core.ErrNoMatches, CodeNoMatches},
	{core.ErrFileWrite, CodeFileWrite},
	{core.ErrInvalidColumn, CodeInvalidColumn},
}

// FromDomain converts a domain error into an AppError carrying its code
func FromDomain(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    GetCode(err),
		Message: err.Error(),
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
