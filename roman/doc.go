// Package roman parses and formats Roman numerals.
//
// # Parsing
//
// [Parse] trims surrounding whitespace and evaluates the numeral with a
// left-to-right scan: a symbol whose value is smaller than the next symbol's
// forms a subtractive pair worth the difference, otherwise it adds its own
// value. Symbols are I=1, V=5, X=10, L=50, C=100, D=500 and M=1000 and are
// case-sensitive.
//
//	n, err := roman.Parse("MCMXCIV") // 1994
//
// Two failures are possible, both from [convkiterrors]:
//
//   - [convkiterrors.EmptyInputError] when nothing is left after trimming
//   - [convkiterrors.InvalidSymbolError] naming the first invalid character
//
// # Grammar Policy
//
// The scan alone accepts strings that are not well-formed numerals, such as
// "IIII" (4), "VV" (10) or "IC" (99). Whether to reject them is an explicit
// choice made with [Policy]:
//
//   - [PolicyPermissive] (the default, and what [Parse] uses) accepts them
//   - [PolicyStrict] requires the canonical spelling returned by [Format] and
//     fails with [convkiterrors.GrammarError] otherwise
//
// Select the policy on a [Parser] or with [ParseWithOptions]:
//
//	result, err := roman.ParseWithOptions(
//	    roman.WithInput("IIII"),
//	    roman.WithPolicy(roman.PolicyStrict),
//	)
//	// errors.Is(err, convkiterrors.ErrGrammar) == true
//
// # Formatting
//
// [Format] renders values between [MinValue] and [MaxValue] canonically, so
// Parse(Format(n)) == n for every n in that range.
//
// All functions are pure and safe for concurrent use. A [Parser] is
// read-only during parsing and can be shared.
package roman
