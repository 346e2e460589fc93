package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/temperature"
)

// TempFlags contains flags for the temp command
type TempFlags struct {
	From      string
	To        string
	Precision int
	Format    string
	Quiet     bool
}

// tempRecord is one converted value in structured output.
type tempRecord struct {
	Input  string   `json:"input"            yaml:"input"`
	From   string   `json:"from"             yaml:"from"`
	To     string   `json:"to"               yaml:"to"`
	Output *float64 `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string   `json:"error,omitempty"  yaml:"error,omitempty"`
}

// SetupTempFlags creates and configures a FlagSet for the temp command.
// Returns the FlagSet and a TempFlags struct with bound flag variables.
func SetupTempFlags() (*flag.FlagSet, *TempFlags) {
	fs := flag.NewFlagSet("temp", flag.ContinueOnError)
	flags := &TempFlags{}

	fs.StringVar(&flags.From, "from", "celsius", "source unit: celsius, fahrenheit, or kelvin (c, f, k)")
	fs.StringVar(&flags.To, "to", "fahrenheit", "target unit: celsius, fahrenheit, or kelvin (c, f, k)")
	fs.IntVar(&flags.Precision, "precision", -1, "digits after the decimal point in text output (-1 for shortest exact)")
	addOutputFlags(fs, &flags.Format, &flags.Quiet)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: convkit temp [flags] <value>... | -\n\n")
		Writef(output, "Convert temperatures between Celsius, Fahrenheit and Kelvin.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  convkit temp 100\n")
		Writef(output, "  convkit temp --from k --to c 273.15 373.15\n")
		Writef(output, "  convkit temp --from f --to c -- -40\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Use -- before negative values so they are not read as flags\n")
		Writef(output, "  - Values below absolute zero are converted, not rejected\n")
	}

	return fs, flags
}

// HandleTemp executes the temp command
func HandleTemp(args []string) error {
	fs, flags := SetupTempFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	from, err := temperature.ParseUnit(flags.From)
	if err != nil {
		return fmt.Errorf("temp: --from: %w", err)
	}
	to, err := temperature.ParseUnit(flags.To)
	if err != nil {
		return fmt.Errorf("temp: --to: %w", err)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("temp command requires at least one value or '-' for stdin")
	}

	inputs, err := CollectInputs(fs, os.Stdin)
	if err != nil {
		return err
	}

	records := make([]tempRecord, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		rec := tempRecord{Input: in, From: from.String(), To: to.String()}
		v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
		if err != nil {
			rec.Error = fmt.Sprintf("invalid number %q", in)
			failed++
			records = append(records, rec)
			continue
		}
		out, err := temperature.Convert(v, from, to)
		if err != nil {
			rec.Error = err.Error()
			failed++
		} else {
			rec.Output = &out
		}
		records = append(records, rec)
	}

	if err := renderTempRecords(records, from, to, flags); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(records))
	}
	return nil
}

func renderTempRecords(records []tempRecord, from, to temperature.Unit, flags *TempFlags) error {
	if flags.Format != FormatText {
		return RenderStructured(os.Stdout, records, flags.Format)
	}

	format := func(v float64) string {
		return strconv.FormatFloat(v, 'f', flags.Precision, 64)
	}

	if flags.Quiet {
		for _, r := range records {
			if r.Error != "" {
				Writef(os.Stderr, "%s: %s\n", r.Input, r.Error)
				continue
			}
			Writef(os.Stdout, "%s\n", format(*r.Output))
		}
		return nil
	}

	headers := []string{from.DisplayName(), to.DisplayName()}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		if r.Error != "" {
			rows = append(rows, []string{r.Input, "error: " + r.Error})
			continue
		}
		rows = append(rows, []string{
			strings.TrimSpace(r.Input) + " " + from.Symbol(),
			format(*r.Output) + " " + to.Symbol(),
		})
	}
	RenderTable(os.Stdout, headers, rows)
	return nil
}
