// Package errors provides standardized error handling for the report
// submission pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Configuration-stage errors. Any of these aborts the run before a single
// request is sent.
const (
	ErrCodeConfigurationInvalid ErrorCode = "CONFIGURATION_INVALID"
	ErrCodeTokenMissing         ErrorCode = "TOKEN_MISSING"
	ErrCodeEnvironmentUnknown   ErrorCode = "ENVIRONMENT_UNKNOWN"
	ErrCodeBureauUnknown        ErrorCode = "BUREAU_UNKNOWN"
)

// Input/output boundary errors, treated the same as configuration errors.
const (
	ErrCodeInputUnreadable  ErrorCode = "INPUT_UNREADABLE"
	ErrCodeInputNotArray    ErrorCode = "INPUT_NOT_ARRAY"
	ErrCodeApplicantInvalid ErrorCode = "APPLICANT_INVALID"
	ErrCodeOutputUnwritable ErrorCode = "OUTPUT_UNWRITABLE"
)

// Per-applicant errors. These are captured into the result entry and never
// abort the run.
const (
	ErrCodeTransportFailed     ErrorCode = "TRANSPORT_FAILED"
	ErrCodeResponseParseFailed ErrorCode = "RESPONSE_PARSE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewConfigurationError creates a fatal error for an unusable configuration
// value (missing URL, bad flag combination, unknown setting).
func NewConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationInvalid,
		Message:   "Invalid configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenMissingError creates a fatal error for an unresolvable bearer token.
func NewTokenMissingError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTokenMissing,
		Message:   "Missing bearer token",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEnvironmentUnknownError creates a fatal error for an environment name
// outside the known table.
func NewEnvironmentUnknownError(name string, valid []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEnvironmentUnknown,
		Message:   "Unknown target environment",
		Details:   fmt.Sprintf("environment %q, valid options: %v", name, valid),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBureauUnknownError creates a fatal error for an unrecognized bureau code.
func NewBureauUnknownError(bureau string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBureauUnknown,
		Message:   "Unknown credit bureau",
		Details:   fmt.Sprintf("bureau %q", bureau),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputUnreadableError creates a fatal error for an input file that cannot
// be read or parsed.
func NewInputUnreadableError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputUnreadable,
		Message:   "Cannot read input file",
		Details:   fmt.Sprintf("path %s: %v", path, err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputNotArrayError creates a fatal error for an input file whose
// top-level value is not a JSON array.
func NewInputNotArrayError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputNotArray,
		Message:   "Input file must be a JSON array of applicant objects",
		Details:   fmt.Sprintf("path %s", path),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicantInvalidError creates a fatal error for an applicant record that
// failed strict-mode schema validation.
func NewApplicantInvalidError(index int, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicantInvalid,
		Message:   "Applicant record failed validation",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"index": index},
		Timestamp: time.Now().UTC(),
	}
}

// NewOutputUnwritableError creates a fatal error for an output file that
// cannot be written.
func NewOutputUnwritableError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOutputUnwritable,
		Message:   "Cannot write output file",
		Details:   fmt.Sprintf("path %s: %v", path, err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportFailedError creates a retryable error for a failure that
// occurred before any HTTP response was received.
func NewTransportFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportFailed,
		Message:   "Transport failure during submission",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
