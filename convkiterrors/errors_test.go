package convkiterrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestEmptyInputError(t *testing.T) {
	t.Run("Error message for empty string", func(t *testing.T) {
		err := &EmptyInputError{}
		if err.Error() != "empty input" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for whitespace only", func(t *testing.T) {
		err := &EmptyInputError{Input: "   "}
		if err.Error() != "empty input: whitespace only" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrEmptyInput", func(t *testing.T) {
		err := &EmptyInputError{}
		if !errors.Is(err, ErrEmptyInput) {
			t.Error("EmptyInputError should match ErrEmptyInput")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &EmptyInputError{}
		if errors.Is(err, ErrInvalidSymbol) {
			t.Error("EmptyInputError should not match ErrInvalidSymbol")
		}
		if errors.Is(err, ErrGrammar) {
			t.Error("EmptyInputError should not match ErrGrammar")
		}
	})
}

func TestInvalidSymbolError(t *testing.T) {
	t.Run("Error message with input", func(t *testing.T) {
		err := &InvalidSymbolError{Input: "XQI", Symbol: 'Q', Position: 1}
		expected := `invalid symbol 'Q' at position 1 in "XQI"`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without input", func(t *testing.T) {
		err := &InvalidSymbolError{Symbol: 'z'}
		if err.Error() != "invalid symbol 'z' at position 0" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrInvalidSymbol", func(t *testing.T) {
		err := &InvalidSymbolError{Symbol: 'Q'}
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Error("InvalidSymbolError should match ErrInvalidSymbol")
		}
		if errors.Is(err, ErrEmptyInput) {
			t.Error("InvalidSymbolError should not match ErrEmptyInput")
		}
	})

	t.Run("As extracts InvalidSymbolError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &InvalidSymbolError{Input: "XQI", Symbol: 'Q', Position: 1})
		var symErr *InvalidSymbolError
		if !errors.As(err, &symErr) {
			t.Fatal("errors.As should succeed")
		}
		if symErr.Symbol != 'Q' {
			t.Errorf("unexpected symbol: %q", symErr.Symbol)
		}
		if symErr.Position != 1 {
			t.Errorf("unexpected position: %d", symErr.Position)
		}
	})
}

func TestGrammarError(t *testing.T) {
	t.Run("Error message with canonical form", func(t *testing.T) {
		err := &GrammarError{Input: "IIII", Value: 4, Canonical: "IV"}
		expected := `grammar error: "IIII" is not a canonical numeral (value 4 is written "IV")`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without canonical form", func(t *testing.T) {
		err := &GrammarError{Input: "MMMM", Value: 4000}
		expected := `grammar error: "MMMM" is not a canonical numeral (value 4000 has no canonical form)`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrGrammar", func(t *testing.T) {
		err := &GrammarError{}
		if !errors.Is(err, ErrGrammar) {
			t.Error("GrammarError should match ErrGrammar")
		}
	})
}

func TestRangeError(t *testing.T) {
	err := &RangeError{Value: 4000, Min: 1, Max: 3999}
	if err.Error() != "value out of range: 4000 (must be between 1 and 3999)" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrRange) {
		t.Error("RangeError should match ErrRange")
	}
	if errors.Is(err, ErrConfig) {
		t.Error("RangeError should not match ErrConfig")
	}
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("bad input")
		err := &ConfigError{
			Option:  "unit",
			Value:   "rankine",
			Message: "unknown temperature unit",
			Cause:   cause,
		}
		expected := "configuration error for unit (value: rankine): unknown temperature unit: bad input"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "unit"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
