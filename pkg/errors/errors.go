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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrCanceled ErrorCode = "CANCELED"

	// Parameter errors
	ErrTooFewParameters ErrorCode = "TOO_FEW_PARAMETERS"
	ErrMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrInvalidParameter ErrorCode = "INVALID_PARAMETER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrSourceFileNotFound   ErrorCode = "SOURCE_FILE_NOT_FOUND"
	ErrSourceFolderNotFound ErrorCode = "SOURCE_FOLDER_NOT_FOUND"
	ErrPatternInvalid       ErrorCode = "PATTERN_INVALID"
	ErrEnumerate            ErrorCode = "ENUMERATE"
	ErrRenameFailed         ErrorCode = "RENAME_FAILED"
)

// Process exit codes. 3 and 5 are reserved: nothing raises them yet.
const (
	ExitSuccess                  = 0
	ExitTooFewParameters         = 1
	ExitMissingMandatoryParam    = 2
	ExitInvalidParameterValue    = 3
	ExitSourceFileDoesNotExist   = 4
	ExitSourceFolderDoesNotExist = 5
)

var exitCodes = map[ErrorCode]int{
	ErrTooFewParameters:     ExitTooFewParameters,
	ErrMissingParameter:     ExitMissingMandatoryParam,
	ErrInvalidParameter:     ExitInvalidParameterValue,
	ErrSourceFileNotFound:   ExitSourceFileDoesNotExist,
	ErrSourceFolderNotFound: ExitSourceFolderDoesNotExist,
}

// StampnameError represents a structured error with code and details
type StampnameError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StampnameError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StampnameError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StampnameError) Is(target error) bool {
	var targetErr *StampnameError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StampnameError with the given code and message
func New(code ErrorCode, message string) *StampnameError {
	return &StampnameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StampnameError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StampnameError {
	return &StampnameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StampnameError
func Wrap(err error, code ErrorCode, message string) *StampnameError {
	if err == nil {
		return nil
	}
	return &StampnameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StampnameError {
	if err == nil {
		return nil
	}
	return &StampnameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StampnameError) WithDetail(key string, value interface{}) *StampnameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var appErr *StampnameError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StampnameError
func GetErrorCode(err error) ErrorCode {
	var appErr *StampnameError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StampnameError
func GetErrorDetails(err error) map[string]interface{} {
	var appErr *StampnameError
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status. Errors without a
// dedicated exit code (cobra usage errors, internal failures) exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if code, ok := exitCodes[GetErrorCode(err)]; ok {
		return code
	}
	return 1
}
