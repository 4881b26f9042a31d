package caseerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnknownStyle indicates a style name that is not in the registry.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrNonConforming indicates identifiers that do not follow the required style.
	ErrNonConforming = errors.New("non-conforming identifiers")
)

// maxListedIdentifiers bounds how many identifiers ConformanceError.Error prints.
const maxListedIdentifiers = 5

// StyleError represents a style name that could not be resolved.
type StyleError struct {
	// Name is the style name as supplied by the caller
	Name string
	// Known lists the canonical names of all supported styles (optional)
	Known []string
	// Message provides additional context (optional)
	Message string
}

// Error returns a human-readable error message.
func (e *StyleError) Error() string {
	msg := fmt.Sprintf("unknown style %q", e.Name)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Known) > 0 {
		msg += " (known: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *StyleError) Is(target error) bool {
	return target == ErrUnknownStyle
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ConformanceError reports identifiers that are not written in the required style.
type ConformanceError struct {
	// Style is the canonical name of the required style
	Style string
	// Identifiers lists the offending identifiers in input order
	Identifiers []string
}

// Error returns a human-readable error message. At most five identifiers are
// listed; the remainder is summarized as a count.
func (e *ConformanceError) Error() string {
	n := len(e.Identifiers)
	noun := "identifiers do"
	if n == 1 {
		noun = "identifier does"
	}
	msg := fmt.Sprintf("%d %s not conform to %s", n, noun, e.Style)
	if n == 0 {
		return msg
	}
	listed := e.Identifiers
	if n > maxListedIdentifiers {
		listed = listed[:maxListedIdentifiers]
	}
	msg += ": " + strings.Join(listed, ", ")
	if n > maxListedIdentifiers {
		msg += fmt.Sprintf(" (and %d more)", n-maxListedIdentifiers)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConformanceError) Is(target error) bool {
	return target == ErrNonConforming
}
