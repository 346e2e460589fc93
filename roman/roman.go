package roman

import (
	"strings"

	"github.com/erraggy/convkit/convkiterrors"
)

const (
	// MinValue is the smallest value with a canonical numeral.
	MinValue = 1
	// MaxValue is the largest value with a canonical numeral.
	MaxValue = 3999
)

// Result describes a successfully parsed numeral.
type Result struct {
	// Input is the raw input as given by the caller
	Input string
	// Numeral is Input with surrounding whitespace trimmed
	Numeral string
	// Value is the evaluated integer
	Value int
	// Policy is the grammar policy the numeral was checked against
	Policy Policy
	// Canonical is the canonical spelling of Value, or empty when Value
	// is outside [MinValue, MaxValue]
	Canonical string
}

// IsCanonical reports whether Numeral is already in canonical form.
func (r *Result) IsCanonical() bool {
	return r.Canonical != "" && r.Canonical == r.Numeral
}

// Parser evaluates Roman numerals. The zero value is ready to use and
// applies [PolicyPermissive] without logging.
type Parser struct {
	// Policy selects how strictly numeral grammar is enforced
	Policy Policy
	// Logger receives debug diagnostics; nil disables logging
	Logger Logger
}

// New returns a Parser with the permissive policy.
func New() *Parser {
	return &Parser{Policy: PolicyPermissive}
}

// Parse evaluates s with the permissive additive/subtractive scan.
//
// Surrounding whitespace is trimmed first. Empty input fails with an error
// matching [convkiterrors.ErrEmptyInput]; any character outside I, V, X, L,
// C, D and M fails with a [convkiterrors.InvalidSymbolError].
func Parse(s string) (int, error) {
	return New().Parse(s)
}

// Parse evaluates s under the parser's policy.
func (p *Parser) Parse(s string) (int, error) {
	result, err := p.ParseResult(s)
	if err != nil {
		return 0, err
	}
	return result.Value, nil
}

// ParseResult evaluates s under the parser's policy and returns the full result.
func (p *Parser) ParseResult(s string) (*Result, error) {
	log := p.logger()

	if !p.Policy.valid() {
		return nil, &convkiterrors.ConfigError{Option: "policy", Value: int(p.Policy), Message: "unknown grammar policy"}
	}

	numeral := strings.TrimSpace(s)
	if numeral == "" {
		log.Debug("rejected empty numeral", "input", s)
		return nil, &convkiterrors.EmptyInputError{Input: s}
	}

	values, err := symbolValues(numeral)
	if err != nil {
		log.Debug("rejected numeral", "numeral", numeral, "error", err)
		return nil, err
	}

	result := &Result{
		Input:   s,
		Numeral: numeral,
		Value:   evaluate(values),
		Policy:  p.Policy,
	}
	if canonical, err := Format(result.Value); err == nil {
		result.Canonical = canonical
	}

	if p.Policy == PolicyStrict && !result.IsCanonical() {
		log.Debug("rejected non-canonical numeral", "numeral", numeral, "value", result.Value, "canonical", result.Canonical)
		return nil, &convkiterrors.GrammarError{
			Input:     numeral,
			Value:     result.Value,
			Canonical: result.Canonical,
		}
	}

	log.Debug("parsed numeral", "numeral", numeral, "value", result.Value, "policy", p.Policy.String())
	return result, nil
}

func (p *Parser) logger() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

// symbolValue returns the value of a single symbol, or 0 if r is not one.
func symbolValue(r rune) int {
	switch r {
	case 'I':
		return 1
	case 'V':
		return 5
	case 'X':
		return 10
	case 'L':
		return 50
	case 'C':
		return 100
	case 'D':
		return 500
	case 'M':
		return 1000
	default:
		return 0
	}
}

// symbolValues maps every rune of numeral to its value, failing on the
// first rune that is not a symbol.
func symbolValues(numeral string) ([]int, error) {
	values := make([]int, 0, len(numeral))
	for _, r := range numeral {
		v := symbolValue(r)
		if v == 0 {
			return nil, &convkiterrors.InvalidSymbolError{
				Input:    numeral,
				Symbol:   r,
				Position: len(values),
			}
		}
		values = append(values, v)
	}
	return values, nil
}

// evaluate runs the subtractive-pair scan. A symbol smaller than its
// successor consumes both and adds the difference; otherwise the symbol adds
// its own value.
func evaluate(values []int) int {
	total := 0
	for i := 0; i < len(values); {
		cur := values[i]
		if i+1 < len(values) && cur < values[i+1] {
			total += values[i+1] - cur
			i += 2
			continue
		}
		total += cur
		i++
	}
	return total
}

var canonicalParts = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Format returns the canonical numeral for n, which must be between
// [MinValue] and [MaxValue].
func Format(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", &convkiterrors.RangeError{Value: n, Min: MinValue, Max: MaxValue}
	}

	var b strings.Builder
	for _, part := range canonicalParts {
		for n >= part.value {
			b.WriteString(part.symbol)
			n -= part.value
		}
	}
	return b.String(), nil
}
