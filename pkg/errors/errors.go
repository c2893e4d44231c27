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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Descriptor errors
	ErrIfoParse  ErrorCode = "IFO_PARSE"
	ErrIfoAccess ErrorCode = "IFO_ACCESS"

	// Selection errors
	ErrDictNotFound ErrorCode = "DICT_NOT_FOUND"
	ErrOrderingRead ErrorCode = "ORDERING_READ"

	// Library errors
	ErrLibraryLoad ErrorCode = "LIBRARY_LOAD"
	ErrPhrase      ErrorCode = "PHRASE"

	// FileSystem errors
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// SdcvError represents a structured error with code and details
type SdcvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SdcvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SdcvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SdcvError) Is(target error) bool {
	var targetErr *SdcvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SdcvError with the given code and message
func New(code ErrorCode, message string) *SdcvError {
	return &SdcvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SdcvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SdcvError {
	return &SdcvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SdcvError
func Wrap(err error, code ErrorCode, message string) *SdcvError {
	if err == nil {
		return nil
	}
	return &SdcvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SdcvError {
	if err == nil {
		return nil
	}
	return &SdcvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SdcvError) WithDetail(key string, value interface{}) *SdcvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sdcvErr *SdcvError
	if errors.As(err, &sdcvErr) {
		return sdcvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SdcvError
func GetErrorCode(err error) ErrorCode {
	var sdcvErr *SdcvError
	if errors.As(err, &sdcvErr) {
		return sdcvErr.Code
	}
	return ErrUnknown
}
