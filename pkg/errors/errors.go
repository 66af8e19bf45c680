package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrTimeout is the cancellation cause recorded when a font fetch exceeds its deadline.
var ErrTimeout = stdErrors.New("font stylesheet fetch timed out")

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures brand definition validation issues.
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

// ConfigError reports a theme compilation failure such as a palette or
// template that cannot be resolved.
type ConfigError struct {
	Theme   string
	Palette string
	Message string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(theme, palette, message string) error {
	return &ConfigError{Theme: theme, Palette: palette, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Theme != "" && e.Palette != "":
		return fmt.Sprintf("config error [theme %s, palette %s]: %s", e.Theme, e.Palette, e.Message)
	case e.Theme != "":
		return fmt.Sprintf("config error [theme %s]: %s", e.Theme, e.Message)
	default:
		return fmt.Sprintf("config error: %s", e.Message)
	}
}

// FontLoadError wraps a recovered network or asset failure from the font loader.
type FontLoadError struct {
	URL     string
	Timeout bool
	Err     error
}

// NewFontLoadError constructs a FontLoadError.
func NewFontLoadError(url string, timeout bool, err error) error {
	return &FontLoadError{URL: url, Timeout: timeout, Err: err}
}

func (e *FontLoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Timeout {
		return fmt.Sprintf("font load timed out: %s", e.URL)
	}
	return fmt.Sprintf("font load failed: %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FontLoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
