// Package render prints a snapshot of a list in a choice of formats.
package render

import (
	"fmt"
	"io"
	"strings"
)

const (
	FormatJSON      = "JSON"
	FormatYAML      = "YAML"
	FormatAsciiTree = "ASCIITREE"
	FormatDOT       = "DOT"
	FormatText      = "TEXT"
)

type Options struct {
	Format     string `yaml:"option-format,omitempty"`
	TrimValues int    `yaml:"option-trim-values,omitempty"`
}

// PrintFunc writes the values of a list, in order, to output.
type PrintFunc func(values []any, output io.Writer, options *Options) error

// snapshot is the document shape shared by the JSON and YAML writers.
type snapshot struct {
	Length int   `json:"length" yaml:"length"`
	Values []any `json:"values" yaml:"values"`
}

func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case FormatJSON:
		return PrintJSON, nil
	case FormatYAML:
		return PrintYAML, nil
	case FormatAsciiTree:
		return PrintAsciiTree, nil
	case FormatDOT:
		return PrintDOT, nil
	case FormatText, "":
		return PrintText, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// TrimValue renders v as text, cut to trimLength characters with an
// ellipsis when trimming is enabled.
func TrimValue(v any, trimLength int) string {
	value := fmt.Sprint(v)
	runes := []rune(value)
	if trimLength > 0 && len(runes) > trimLength {
		// Reserve space for the ellipsis "…".
		if trimLength >= 2 {
			return string(runes[:trimLength-1]) + "…"
		}
		return string(runes[:trimLength])
	}
	return value
}

func trimOf(options *Options) int {
	if options == nil {
		return 0
	}
	return options.TrimValues
}

func PrintText(values []any, output io.Writer, options *Options) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(output, TrimValue(v, trimOf(options))); err != nil {
			return err
		}
	}
	return nil
}
