package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/convkit/casing"
)

// CaseFlags contains flags for the case command
type CaseFlags struct {
	Style  string
	Format string
	Quiet  bool
}

// caseRecord is one converted input in structured output.
type caseRecord struct {
	Input  string `json:"input"  yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Style  string `json:"style"  yaml:"style"`
}

// SetupCaseFlags creates and configures a FlagSet for the case command.
// The name is "case" or its "camel" alias and only affects usage text.
func SetupCaseFlags(name string) (*flag.FlagSet, *CaseFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &CaseFlags{}

	fs.StringVar(&flags.Style, "style", string(casing.StyleCamel), "output style: camel, pascal, snake, or kebab")
	addOutputFlags(fs, &flags.Format, &flags.Quiet)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: convkit %s [flags] <text>... | -\n\n", name)
		Writef(output, "Convert snake_case, kebab-case or space separated text to camelCase.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  convkit %s hello_world this-is-a-test\n", name)
		Writef(output, "  convkit %s --style snake UserProfile\n", name)
		Writef(output, "  cat names.txt | convkit %s -q -\n", name)
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Underscore, hyphen and whitespace separate words\n")
		Writef(output, "  - Quote arguments that contain spaces\n")
	}

	return fs, flags
}

// HandleCase executes the case command
func HandleCase(name string, args []string) error {
	fs, flags := SetupCaseFlags(name)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	style, err := casing.ParseStyle(flags.Style)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%s command requires at least one input or '-' for stdin", name)
	}

	inputs, err := CollectInputs(fs, os.Stdin)
	if err != nil {
		return err
	}

	records := make([]caseRecord, 0, len(inputs))
	for _, in := range inputs {
		records = append(records, caseRecord{
			Input:  in,
			Output: casing.Convert(in, style),
			Style:  string(style),
		})
	}

	if flags.Format != FormatText {
		return RenderStructured(os.Stdout, records, flags.Format)
	}

	if flags.Quiet {
		for _, r := range records {
			Writef(os.Stdout, "%s\n", r.Output)
		}
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{fmt.Sprintf("%q", r.Input), r.Output})
	}
	RenderTable(os.Stdout, []string{"INPUT", "OUTPUT"}, rows)
	return nil
}
