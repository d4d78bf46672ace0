// Package output renders optimization results for the command line and for export.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
)

// Formatter renders a display model in one output format
type Formatter interface {
	Name() string
	Format(model *display.Model) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(model *display.Model) ([]byte, error)
}

// Name returns the formatter ID
func (f FormatterFunc) Name() string { return f.ID }

// Format calls the wrapped function
func (f FormatterFunc) Format(model *display.Model) ([]byte, error) { return f.F(model) }

var formatters = map[string]Formatter{
	"table": TableFormatter{},
	"json":  JSONFormatter{Pretty: true},
	"csv":   CSVFormatter{},
	"yaml":  YAMLFormatter{},
}

// GetFormatterByName returns the registered formatter for a name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[strings.ToLower(strings.TrimSpace(name))]
}

// FormatNames lists registered formatter names in sorted order
func FormatNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders the model and writes it to a timestamped file in the
// working directory, returning the file name
func WriteFormatted(f Formatter, model *display.Model, ext string) (string, error) {
	data, err := f.Format(model)
	if err != nil {
		return "", fmt.Errorf("failed to format %s output: %w", f.Name(), err)
	}

	filename := fmt.Sprintf("sales_optimization_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
