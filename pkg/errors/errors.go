package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Store errors
	ErrStoreDecode ErrorCode = "STORE_DECODE"
	ErrStoreEncode ErrorCode = "STORE_ENCODE"

	// Config errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigSave  ErrorCode = "CONFIG_SAVE"
	ErrRootAssign  ErrorCode = "ROOT_ASSIGN"
	ErrRegister    ErrorCode = "REGISTER_FAILED"
	ErrInvalidName ErrorCode = "INVALID_NAME"

	// Path errors
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrPathResolve ErrorCode = "PATH_RESOLVE"

	// Export errors
	ErrExportFormat ErrorCode = "EXPORT_FORMAT"
	ErrExportEncode ErrorCode = "EXPORT_ENCODE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// SectconfError represents a structured error with code and details
type SectconfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SectconfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SectconfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SectconfError) Is(target error) bool {
	var targetErr *SectconfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SectconfError with the given code and message
func New(code ErrorCode, message string) *SectconfError {
	return &SectconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SectconfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SectconfError {
	return &SectconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SectconfError
func Wrap(err error, code ErrorCode, message string) *SectconfError {
	if err == nil {
		return nil
	}
	return &SectconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SectconfError {
	if err == nil {
		return nil
	}
	return &SectconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SectconfError) WithDetail(key string, value interface{}) *SectconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scErr *SectconfError
	if errors.As(err, &scErr) {
		return scErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SectconfError
func GetErrorCode(err error) ErrorCode {
	var scErr *SectconfError
	if errors.As(err, &scErr) {
		return scErr.Code
	}
	return ErrUnknown
}
