// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes convkit conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"os"

	"github.com/erraggy/convkit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `convkit MCP server: camelCase conversion, Roman numerals and temperature units.

Configuration: defaults are configurable via CONVKIT_* environment variables set in your MCP client config.

Key settings:
- CONVKIT_ROMAN_STRICT (default: false) - reject non-canonical numerals such as IIII, VV or IC unless a call sets strict itself
- CONVKIT_LOG_LEVEL (default: info) - stderr log level: debug, info, warn, error

All tools are pure functions: the same arguments always give the same result or error.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. Logs go to stderr since stdout carries the protocol.
func Run(ctx context.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	server := newServer()
	logger.Info("starting MCP server", "version", convkit.Version(), "roman_strict", cfg.RomanStrict)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "convkit", Version: convkit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert snake_case, kebab-case or space separated text to camelCase. Underscore, hyphen and whitespace separate words; runs of them count once and leading or trailing ones are dropped. Characters inside words keep their case. Set style to pascal, snake or kebab for other conventions.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "roman_to_int",
		Description: "Evaluate a Roman numeral (symbols I, V, X, L, C, D, M; surrounding whitespace ignored). A smaller symbol before a larger one subtracts. Set strict=true to reject numerals that are not canonically written (IIII, VV, IC); the default is configurable via CONVKIT_ROMAN_STRICT. Returns the value, whether the input is canonical, and its canonical spelling.",
	}, handleRomanToInt)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "int_to_roman",
		Description: "Format an integer between 1 and 3999 as a canonical Roman numeral.",
	}, handleIntToRoman)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_temperature",
		Description: "Convert a temperature between celsius, fahrenheit and kelvin (also accepts c, f, k, °C, °F). Exact floating-point formulas; values below absolute zero are converted, not rejected.",
	}, handleConvertTemperature)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
