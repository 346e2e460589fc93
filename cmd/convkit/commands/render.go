package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"
)

// RenderTable renders rows under headers as a fixed-width table.
func RenderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				_, _ = fmt.Fprint(w, "  ")
			}
			if i == len(cells)-1 {
				// No padding after the last column.
				_, _ = fmt.Fprint(w, cell)
				continue
			}
			_, _ = fmt.Fprintf(w, "%-*s", widths[i], cell)
		}
		_, _ = fmt.Fprintln(w)
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
}

// RenderStructured renders v as indented JSON or as YAML.
func RenderStructured(w io.Writer, v any, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
