package mcpserver

import (
	"context"

	"github.com/erraggy/convkit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertCaseInput struct {
	Text  string `json:"text"            jsonschema:"Text to convert, e.g. hello_world or background-color"`
	Style string `json:"style,omitempty" jsonschema:"Target style: camel (default), pascal, snake or kebab"`
}

type convertCaseOutput struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Style  string `json:"style"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	style, err := casing.ParseStyle(input.Style)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	return nil, convertCaseOutput{
		Input:  input.Text,
		Output: casing.Convert(input.Text, style),
		Style:  string(style),
	}, nil
}
