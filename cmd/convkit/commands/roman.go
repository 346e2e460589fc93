package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/roman"
)

// RomanFlags contains flags for the roman command
type RomanFlags struct {
	Strict bool
	Encode bool
	Format string
	Quiet  bool
}

// romanRecord is one parsed (or encoded) input in structured output.
type romanRecord struct {
	Input     string `json:"input"               yaml:"input"`
	Value     int    `json:"value,omitempty"     yaml:"value,omitempty"`
	Numeral   string `json:"numeral,omitempty"   yaml:"numeral,omitempty"`
	Canonical *bool  `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Error     string `json:"error,omitempty"     yaml:"error,omitempty"`
}

// SetupRomanFlags creates and configures a FlagSet for the roman command.
// Returns the FlagSet and a RomanFlags struct with bound flag variables.
func SetupRomanFlags() (*flag.FlagSet, *RomanFlags) {
	fs := flag.NewFlagSet("roman", flag.ContinueOnError)
	flags := &RomanFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "reject numerals that are not canonically written (IIII, VV, IC)")
	fs.BoolVar(&flags.Encode, "encode", false, "convert integers (1-3999) to numerals instead")
	addOutputFlags(fs, &flags.Format, &flags.Quiet)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: convkit roman [flags] <numeral>... | -\n\n")
		Writef(output, "Evaluate Roman numerals, or format integers with --encode.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  convkit roman XII MDCLXVI\n")
		Writef(output, "  convkit roman --strict IIII\n")
		Writef(output, "  convkit roman --encode 1994\n")
		Writef(output, "  convkit roman --format json -\n")
		Writef(output, "\nGrammar Policy:\n")
		Writef(output, "  By default any string of I, V, X, L, C, D, M is evaluated with the\n")
		Writef(output, "  subtractive-pair scan, so IIII is 4 and IC is 99. --strict accepts only\n")
		Writef(output, "  the canonical spelling of each value.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    All inputs converted\n")
		Writef(output, "  1    At least one input failed (all results are still printed)\n")
	}

	return fs, flags
}

// HandleRoman executes the roman command
func HandleRoman(args []string) error {
	fs, flags := SetupRomanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("roman command requires at least one input or '-' for stdin")
	}

	inputs, err := CollectInputs(fs, os.Stdin)
	if err != nil {
		return err
	}

	var records []romanRecord
	if flags.Encode {
		records = encodeNumerals(inputs)
	} else {
		p := roman.New()
		if flags.Strict {
			p.Policy = roman.PolicyStrict
		}
		records = parseNumerals(p, inputs)
	}

	failed := 0
	for _, r := range records {
		if r.Error != "" {
			failed++
		}
	}

	if err := renderRomanRecords(records, flags); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(records))
	}
	return nil
}

func parseNumerals(p *roman.Parser, inputs []string) []romanRecord {
	records := make([]romanRecord, 0, len(inputs))
	for _, in := range inputs {
		rec := romanRecord{Input: in}
		result, err := p.ParseResult(in)
		if err != nil {
			rec.Error = err.Error()
		} else {
			canonical := result.IsCanonical()
			rec.Value = result.Value
			rec.Numeral = result.Numeral
			rec.Canonical = &canonical
		}
		records = append(records, rec)
	}
	return records
}

func encodeNumerals(inputs []string) []romanRecord {
	records := make([]romanRecord, 0, len(inputs))
	for _, in := range inputs {
		rec := romanRecord{Input: in}
		n, err := strconv.Atoi(strings.TrimSpace(in))
		if err != nil {
			rec.Error = fmt.Sprintf("invalid integer %q", in)
			records = append(records, rec)
			continue
		}
		numeral, err := roman.Format(n)
		if err != nil {
			rec.Error = err.Error()
		} else {
			rec.Value = n
			rec.Numeral = numeral
		}
		records = append(records, rec)
	}
	return records
}

func renderRomanRecords(records []romanRecord, flags *RomanFlags) error {
	if flags.Format != FormatText {
		return RenderStructured(os.Stdout, records, flags.Format)
	}

	if flags.Quiet {
		for _, r := range records {
			switch {
			case r.Error != "":
				Writef(os.Stderr, "%s: %s\n", r.Input, r.Error)
			case flags.Encode:
				Writef(os.Stdout, "%s\n", r.Numeral)
			default:
				Writef(os.Stdout, "%d\n", r.Value)
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		var out string
		switch {
		case r.Error != "":
			out = "error: " + r.Error
		case flags.Encode:
			out = r.Numeral
		default:
			out = strconv.Itoa(r.Value)
		}
		rows = append(rows, []string{fmt.Sprintf("%q", r.Input), out})
	}
	RenderTable(os.Stdout, []string{"INPUT", "OUTPUT"}, rows)
	return nil
}
