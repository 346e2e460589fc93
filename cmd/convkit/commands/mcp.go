package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/convkit/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: convkit mcp\n\n")
		Writef(output, "Serve convkit conversions as MCP tools over stdio.\n\n")
		Writef(output, "Tools:\n")
		Writef(output, "  convert_case         camelCase (or pascal, snake, kebab) conversion\n")
		Writef(output, "  roman_to_int         evaluate a Roman numeral\n")
		Writef(output, "  int_to_roman         format an integer as a Roman numeral\n")
		Writef(output, "  convert_temperature  convert between celsius, fahrenheit and kelvin\n")
		Writef(output, "\nEnvironment:\n")
		Writef(output, "  CONVKIT_ROMAN_STRICT  reject non-canonical numerals by default (default false)\n")
		Writef(output, "  CONVKIT_LOG_LEVEL     stderr log level: debug, info, warn, error (default info)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process receives SIGINT or SIGTERM.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
