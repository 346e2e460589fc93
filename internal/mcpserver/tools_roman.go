package mcpserver

import (
	"context"
	"log/slog"

	"github.com/erraggy/convkit/roman"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type romanToIntInput struct {
	Numeral string `json:"numeral"          jsonschema:"Roman numeral to evaluate, e.g. MCMXCIV"`
	Strict  *bool  `json:"strict,omitempty" jsonschema:"Reject numerals that are not canonically written. Defaults to CONVKIT_ROMAN_STRICT."`
}

type romanToIntOutput struct {
	Numeral       string `json:"numeral"`
	Value         int    `json:"value"`
	Policy        string `json:"policy"`
	Canonical     bool   `json:"canonical"`
	CanonicalForm string `json:"canonical_form,omitempty"`
}

func handleRomanToInt(_ context.Context, _ *mcp.CallToolRequest, input romanToIntInput) (*mcp.CallToolResult, romanToIntOutput, error) {
	strict := cfg.RomanStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	result, err := roman.ParseWithOptions(
		roman.WithInput(input.Numeral),
		roman.WithStrict(strict),
		roman.WithLogger(roman.NewSlogAdapter(slog.Default())),
	)
	if err != nil {
		return errResult(err), romanToIntOutput{}, nil
	}

	return nil, romanToIntOutput{
		Numeral:       result.Numeral,
		Value:         result.Value,
		Policy:        result.Policy.String(),
		Canonical:     result.IsCanonical(),
		CanonicalForm: result.Canonical,
	}, nil
}

type intToRomanInput struct {
	Value int `json:"value" jsonschema:"Integer between 1 and 3999"`
}

type intToRomanOutput struct {
	Value   int    `json:"value"`
	Numeral string `json:"numeral"`
}

func handleIntToRoman(_ context.Context, _ *mcp.CallToolRequest, input intToRomanInput) (*mcp.CallToolResult, intToRomanOutput, error) {
	numeral, err := roman.Format(input.Value)
	if err != nil {
		return errResult(err), intToRomanOutput{}, nil
	}
	return nil, intToRomanOutput{Value: input.Value, Numeral: numeral}, nil
}
