// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT transport errors.
// They are infrastructure-agnostic and are mapped to exit codes and messages by the CLI.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrRequest indicates the provider could not be reached or answered with a non-2xx status.
	ErrRequest = errors.New("request failed")

	// ErrDecode indicates the provider response body is not valid UTF-8 text.
	ErrDecode = errors.New("response is not valid UTF-8")

	// ErrParse indicates the response body does not match the provider schema.
	ErrParse = errors.New("failed to parse response")

	// ErrSerialize indicates a quote could not be converted to JSON output.
	ErrSerialize = errors.New("failed to serialize quote")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")
)

// FetchKind classifies a FetchError.
type FetchKind int

const (
	// KindRequest is a transport-level failure: DNS, connect, TLS, non-2xx, timeout.
	KindRequest FetchKind = iota

	// KindDecode is a body that is not valid UTF-8.
	KindDecode

	// KindParse is malformed JSON or a schema mismatch.
	KindParse
)

// String returns a human-readable name for the kind.
func (k FetchKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindDecode:
		return "decode"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// sentinel returns the sentinel error matching the kind.
func (k FetchKind) sentinel() error {
	switch k {
	case KindRequest:
		return ErrRequest
	case KindDecode:
		return ErrDecode
	default:
		return ErrParse
	}
}

// FetchError is returned by quote providers.
type FetchError struct {
	Provider string
	Kind     FetchKind
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind.sentinel(), e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Provider, e.Kind.sentinel())
}

// Is matches the sentinel error of the kind, so errors.Is(err, ErrParse) works.
func (e *FetchError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a request-kind fetch error.
func NewRequestError(provider string, err error) error {
	return &FetchError{Provider: provider, Kind: KindRequest, Err: err}
}

// NewDecodeError creates a decode-kind fetch error.
func NewDecodeError(provider string, err error) error {
	return &FetchError{Provider: provider, Kind: KindDecode, Err: err}
}

// NewParseError creates a parse-kind fetch error.
func NewParseError(provider string, err error) error {
	return &FetchError{Provider: provider, Kind: KindParse, Err: err}
}

// SerializeError wraps a failure to encode a quote for output.
type SerializeError struct {
	Err error
}

// Error implements the error interface.
func (e *SerializeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrSerialize, e.Err)
}

// Is matches ErrSerialize.
func (e *SerializeError) Is(target error) bool {
	return target == ErrSerialize
}

// Unwrap returns the underlying encoder error.
func (e *SerializeError) Unwrap() error {
	return e.Err
}

// NewSerializeError creates a serialize error.
func NewSerializeError(err error) error {
	return &SerializeError{Err: err}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// IsRequest checks if an error is a request-kind fetch error.
func IsRequest(err error) bool {
	return errors.Is(err, ErrRequest)
}

// IsDecode checks if an error is a decode-kind fetch error.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsParse checks if an error is a parse-kind fetch error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsSerialize checks if an error is a serialize error.
func IsSerialize(err error) bool {
	return errors.Is(err, ErrSerialize)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
