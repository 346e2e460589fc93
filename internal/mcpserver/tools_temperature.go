package mcpserver

import (
	"context"

	"github.com/erraggy/convkit/temperature"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertTemperatureInput struct {
	Value float64 `json:"value" jsonschema:"Temperature value to convert"`
	From  string  `json:"from"  jsonschema:"Source unit: celsius, fahrenheit or kelvin (c, f, k also accepted)"`
	To    string  `json:"to"    jsonschema:"Target unit: celsius, fahrenheit or kelvin (c, f, k also accepted)"`
}

type convertTemperatureOutput struct {
	Value   float64 `json:"value"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

func handleConvertTemperature(_ context.Context, _ *mcp.CallToolRequest, input convertTemperatureInput) (*mcp.CallToolResult, convertTemperatureOutput, error) {
	from, err := temperature.ParseUnit(input.From)
	if err != nil {
		return errResult(err), convertTemperatureOutput{}, nil
	}
	to, err := temperature.ParseUnit(input.To)
	if err != nil {
		return errResult(err), convertTemperatureOutput{}, nil
	}

	converted, err := temperature.Temperature{Value: input.Value, Unit: from}.To(to)
	if err != nil {
		return errResult(err), convertTemperatureOutput{}, nil
	}

	return nil, convertTemperatureOutput{
		Value:   input.Value,
		From:    from.String(),
		To:      to.String(),
		Result:  converted.Value,
		Display: converted.String(),
	}, nil
}
