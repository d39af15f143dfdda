// Package output renders analysis results in the supported output formats.
// The text renderer is the only place in the repository that formats
// currency strings; YAML and JSON output carry raw numbers.
package output

import (
	"errors"
	"fmt"
)

// Format represents an output format for analysis results.
type Format string

const (
	// FormatText renders the human-readable console report.
	FormatText Format = "text"
	// FormatYAML renders results as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON renders results as JSON.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned when a format string cannot be parsed.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q (valid: text, yaml, json)", ErrUnknownFormat, s)
	}
}
