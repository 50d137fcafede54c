// Package errors defines the typed errors shared across mdblocks. Each type
// carries the context needed to report it and unwraps to its cause.
package errors

import (
	"fmt"
)

// ParseError represents a failure to parse a document or configuration file,
// with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FetchError reports that an image or document could not be retrieved.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// NewFetchError constructs a FetchError.
func NewFetchError(url string, status int, err error) error {
	return &FetchError{URL: url, StatusCode: status, Err: err}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DecodeError reports bytes that were retrieved but are not a supported image.
type DecodeError struct {
	URL string
	Err error
}

// NewDecodeError constructs a DecodeError.
func NewDecodeError(url string, err error) error {
	return &DecodeError{URL: url, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a document source that could not be opened.
type SourceError struct {
	Ref      string
	Revision string
	Err      error
}

// NewSourceError constructs a SourceError.
func NewSourceError(ref, revision string, err error) error {
	return &SourceError{Ref: ref, Revision: revision, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Revision != "" {
		return fmt.Sprintf("source %s@%s: %v", e.Ref, e.Revision, e.Err)
	}
	return fmt.Sprintf("source %s: %v", e.Ref, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
