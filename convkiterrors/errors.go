package convkiterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrEmptyInput indicates the input was empty or whitespace only.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidSymbol indicates a character outside the accepted symbol set.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrGrammar indicates a numeral that evaluates but is not canonically formed.
	ErrGrammar = errors.New("grammar error")

	// ErrRange indicates a value outside the representable range.
	ErrRange = errors.New("value out of range")

	// ErrConfig indicates an invalid configuration or option.
	ErrConfig = errors.New("configuration error")
)

// EmptyInputError reports an input that is empty once surrounding
// whitespace is trimmed.
type EmptyInputError struct {
	// Input is the raw input as given by the caller
	Input string
}

// Error returns a human-readable error message.
func (e *EmptyInputError) Error() string {
	if e.Input != "" {
		return "empty input: whitespace only"
	}
	return "empty input"
}

// Is reports whether target matches this error type.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// InvalidSymbolError reports the first character that is not a valid symbol.
type InvalidSymbolError struct {
	// Input is the trimmed input that was being scanned
	Input string
	// Symbol is the offending character
	Symbol rune
	// Position is the 0-based rune index of Symbol within Input
	Position int
}

// Error returns a human-readable error message.
func (e *InvalidSymbolError) Error() string {
	msg := fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Position)
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// GrammarError reports a numeral that is arithmetically computable but not
// written in canonical form. It is only produced under a strict policy.
type GrammarError struct {
	// Input is the trimmed numeral
	Input string
	// Value is what the additive/subtractive scan computed
	Value int
	// Canonical is the canonical spelling of Value, empty when Value
	// cannot be represented
	Canonical string
}

// Error returns a human-readable error message.
func (e *GrammarError) Error() string {
	msg := fmt.Sprintf("grammar error: %q is not a canonical numeral", e.Input)
	if e.Canonical != "" {
		msg += fmt.Sprintf(" (value %d is written %q)", e.Value, e.Canonical)
	} else {
		msg += fmt.Sprintf(" (value %d has no canonical form)", e.Value)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *GrammarError) Is(target error) bool {
	return target == ErrGrammar
}

// RangeError reports a value outside [Min, Max].
type RangeError struct {
	Value int
	Min   int
	Max   int
}

// Error returns a human-readable error message.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value out of range: %d (must be between %d and %d)", e.Value, e.Min, e.Max)
}

// Is reports whether target matches this error type.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// ConfigError represents an invalid configuration or input option.
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
