// Package convkiterrors provides structured error types for the convkit library.
//
// Import path: github.com/erraggy/convkit/convkiterrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// so callers can tell apart the few ways a conversion can fail without matching
// on message text.
//
// # Error Types
//
//   - [EmptyInputError]: input is empty or whitespace only
//   - [InvalidSymbolError]: a character outside the accepted symbol set, with its position
//   - [GrammarError]: a numeral that evaluates but is not canonical (strict policy only)
//   - [RangeError]: a value that cannot be rendered as a numeral
//   - [ConfigError]: invalid options such as an unknown temperature unit
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrEmptyInput]: Matches any [EmptyInputError]
//   - [ErrInvalidSymbol]: Matches any [InvalidSymbolError]
//   - [ErrGrammar]: Matches any [GrammarError]
//   - [ErrRange]: Matches any [RangeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	n, err := roman.Parse(input)
//	if errors.Is(err, convkiterrors.ErrEmptyInput) {
//	    // Prompt for a value
//	}
//
// Extract error details with errors.As():
//
//	var symErr *convkiterrors.InvalidSymbolError
//	if errors.As(err, &symErr) {
//	    fmt.Printf("unexpected %q at %d\n", symErr.Symbol, symErr.Position)
//	}
//
// Errors are permanent for a given input: calling again with the same input
// reproduces the same error.
package convkiterrors
