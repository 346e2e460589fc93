// Package commands provides CLI command handlers for convkit.
package commands

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinArg is the special argument used to indicate reading inputs from stdin.
const StdinArg = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// CollectInputs returns the positional arguments of fs as inputs.
// A single StdinArg reads one input per line from r instead.
func CollectInputs(fs *flag.FlagSet, r io.Reader) ([]string, error) {
	if fs.NArg() == 1 && fs.Arg(0) == StdinArg {
		return readLines(r)
	}
	return fs.Args(), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

// addOutputFlags registers the --format and --quiet flags shared by the
// conversion commands.
func addOutputFlags(fs *flag.FlagSet, format *string, quiet *bool) {
	fs.StringVar(format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(quiet, "q", false, "quiet mode: print only converted values, one per line")
	fs.BoolVar(quiet, "quiet", false, "quiet mode: print only converted values, one per line")
}
