package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Reference-data errors
	ErrCodeUnknownCompound  ErrorCode = "UNKNOWN_COMPOUND"
	ErrCodeUnknownStructure ErrorCode = "UNKNOWN_STRUCTURE"
	ErrCodeUnknownPage      ErrorCode = "UNKNOWN_PAGE"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// LabError represents a structured error with context
type LabError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *LabError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LabError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *LabError) WithDetail(key string, value interface{}) *LabError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *LabError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new LabError
func New(code ErrorCode, message string) *LabError {
	return &LabError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a LabError
func Wrap(err error, code ErrorCode, message string) *LabError {
	return &LabError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific LabError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	labErr, ok := err.(*LabError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return labErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	labErr, ok := err.(*LabError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return labErr.Code
}
