package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Extraction errors
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeCorruptDocument   ErrorCode = "CORRUPT_DOCUMENT"
	CodeEmptyExtraction   ErrorCode = "EMPTY_EXTRACTION"

	// Question generation errors
	CodeEmptyInput        ErrorCode = "EMPTY_INPUT"
	CodeUpstreamService   ErrorCode = "UPSTREAM_SERVICE_ERROR"
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	CodeSetNotFound       ErrorCode = "QUESTION_SET_NOT_FOUND"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithContext attaches diagnostic key/value pairs to the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Helper functions for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewUnsupportedFormatError(tag string) *DomainError {
	return NewError(CodeUnsupportedFormat,
		fmt.Sprintf("Unsupported document format: %q (supported: pdf, pptx, docx)", tag), nil)
}

func NewCorruptDocumentError(format DocumentFormat, cause error) *DomainError {
	return NewError(CodeCorruptDocument,
		fmt.Sprintf("Failed to parse %s document", format), cause)
}

func NewEmptyExtractionError(filename string) *DomainError {
	return NewError(CodeEmptyExtraction,
		fmt.Sprintf("No text could be extracted from %q", filename), nil)
}

func NewEmptyInputError() *DomainError {
	return NewError(CodeEmptyInput, "Input text is empty", nil)
}

func NewUpstreamServiceError(cause error) *DomainError {
	return NewError(CodeUpstreamService, "Question generation service is unavailable", cause)
}

func NewMalformedResponseError(cause error) *DomainError {
	return NewError(CodeMalformedResponse, "Question generation service returned an unreadable response", cause)
}

func NewSetNotFoundError(setID string) *DomainError {
	return NewError(CodeSetNotFound,
		fmt.Sprintf("Question set not found: %s", setID), nil)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d, got %d", min, max, value)}
}
