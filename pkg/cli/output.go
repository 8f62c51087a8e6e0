package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is plain text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
	// FormatCSV is CSV output.
	FormatCSV OutputFormat = "csv"
)

// Table is row-oriented output a formatter can render in any format.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Formatter renders a Table to a writer.
type Formatter interface {
	FormatTo(w io.Writer, table Table) error
}

// TextFormatter renders rows as aligned plain text columns.
type TextFormatter struct{}

// FormatTo writes the table as padded text columns.
func (f *TextFormatter) FormatTo(w io.Writer, table Table) error {
	widths := make([]int, len(table.Headers))
	for i, h := range table.Headers {
		widths[i] = len(h)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) error {
		for i, cell := range cells {
			pad := ""
			if i < len(cells)-1 {
				pad = fmt.Sprintf("%-*s", widths[i]-len(cell)+2, "")
			}
			if _, err := fmt.Fprintf(w, "%s%s", cell, pad); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	if err := writeRow(table.Headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter renders rows as an array of header-keyed objects.
type JSONFormatter struct{}

// FormatTo writes the table as indented JSON.
func (f *JSONFormatter) FormatTo(w io.Writer, table Table) error {
	objects := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		obj := make(map[string]string, len(table.Headers))
		for i, h := range table.Headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		objects = append(objects, obj)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(objects)
}

// CSVFormatter renders rows as CSV with a header row.
type CSVFormatter struct{}

// FormatTo writes the table as CSV.
func (f *CSVFormatter) FormatTo(w io.Writer, table Table) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(table.Headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// NewFormatter creates a formatter for the specified format. Unknown
// formats fall back to text.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatCSV:
		return &CSVFormatter{}
	default:
		return &TextFormatter{}
	}
}
