// Package export serializes assessment results for download.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/scoring"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatYAML}
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or yaml)", s)
}

// Ext returns the file extension for the format, without a dot.
func (f Format) Ext() string {
	return string(f)
}

// DefaultFilename returns the suggested download name for the format.
func DefaultFilename(f Format) string {
	return "maturity_assessment." + f.Ext()
}

// Write serializes results in the given format. The profile is included in
// the structured formats and ignored by CSV.
func Write(w io.Writer, f Format, results *scoring.Results, profile assessment.Profile) error {
	if results == nil {
		return fmt.Errorf("export: no results")
	}
	switch f {
	case FormatCSV:
		return WriteCSV(w, results)
	case FormatJSON:
		return WriteJSON(w, results, profile)
	case FormatYAML:
		return WriteYAML(w, results, profile)
	}
	return fmt.Errorf("export: unsupported format %q", f)
}
