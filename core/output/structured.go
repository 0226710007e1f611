package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// YAMLFormatter renders the report as YAML
type YAMLFormatter struct{}

// Format returns FormatYAML
func (f *YAMLFormatter) Format() Format {
	return FormatYAML
}

// Render writes the report
func (f *YAMLFormatter) Render(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
