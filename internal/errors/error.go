// Package errors provides structured errors for the Verdin tooling
// surface (CLI, config, build, deploy).
//
// Library packages under pkg/ return plain typed errors; this package
// exists so the CLI can attach codes, detail, and fix suggestions to the
// failures a project author hits from the command line.
package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
	CategoryBuild   Category = "build"
	CategoryDeploy  Category = "deploy"
	CategoryRuntime Category = "runtime"
)

// VerdinError is a structured error with a code, detail, and suggestion.
type VerdinError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, cli, build, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VerdinError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VerdinError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *VerdinError) WithDetail(d string) *VerdinError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VerdinError) WithSuggestion(s string) *VerdinError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *VerdinError) Wrap(err error) *VerdinError {
	e.Wrapped = err
	return e
}

// New creates a VerdinError from a registered error code.
func New(code string) *VerdinError {
	template, ok := registry[code]
	if !ok {
		return &VerdinError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VerdinError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new VerdinError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VerdinError {
	return &VerdinError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VerdinError.
func FromError(err error, code string) *VerdinError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*VerdinError); ok {
		return ve
	}
	return New(code).Wrap(err)
}
