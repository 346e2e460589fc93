package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTemperatureTool(t *testing.T) {
	tests := []struct {
		name  string
		input convertTemperatureInput
		want  convertTemperatureOutput
	}{
		{
			name:  "boiling point",
			input: convertTemperatureInput{Value: 100, From: "celsius", To: "fahrenheit"},
			want:  convertTemperatureOutput{Value: 100, From: "celsius", To: "fahrenheit", Result: 212, Display: "212 °F"},
		},
		{
			name:  "short unit names",
			input: convertTemperatureInput{Value: 0, From: "c", To: "k"},
			want:  convertTemperatureOutput{Value: 0, From: "celsius", To: "kelvin", Result: 273.15, Display: "273.15 K"},
		},
		{
			name:  "crossover point",
			input: convertTemperatureInput{Value: -40, From: "F", To: "C"},
			want:  convertTemperatureOutput{Value: -40, From: "fahrenheit", To: "celsius", Result: -40, Display: "-40 °C"},
		},
		{
			name:  "same unit",
			input: convertTemperatureInput{Value: 42, From: "kelvin", To: "kelvin"},
			want:  convertTemperatureOutput{Value: 42, From: "kelvin", To: "kelvin", Result: 42, Display: "42 K"},
		},
		{
			name:  "below absolute zero is converted",
			input: convertTemperatureInput{Value: -10, From: "kelvin", To: "celsius"},
			want:  convertTemperatureOutput{Value: -10, From: "kelvin", To: "celsius", Result: -283.15, Display: "-283.15 °C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleConvertTemperature(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestConvertTemperatureTool_UnknownUnit(t *testing.T) {
	tests := []struct {
		name  string
		input convertTemperatureInput
	}{
		{"bad from", convertTemperatureInput{Value: 1, From: "rankine", To: "celsius"}},
		{"bad to", convertTemperatureInput{Value: 1, From: "celsius", To: "reaumur"}},
		{"missing units", convertTemperatureInput{Value: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleConvertTemperature(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Contains(t, errorText(t, result), "unit")
		})
	}
}
