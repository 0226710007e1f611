// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"

	"refine-calc/core/engine"
	"refine-calc/core/pricing"
	"refine-calc/core/resource"
	"refine-calc/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is human-readable console output
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatCLI, FormatJSON, FormatYAML, FormatMarkdown}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Get returns the formatter for a format name
func Get(format Format, noColor bool) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{NoColor: noColor}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// Report is the rendered view of a calculation
type Report struct {
	Haves    []Entry         `json:"haves" yaml:"haves"`
	Needs    []Entry         `json:"needs" yaml:"needs"`
	Crafted  []Entry         `json:"crafted,omitempty" yaml:"crafted,omitempty"`
	Cost     *Cost           `json:"cost,omitempty" yaml:"cost,omitempty"`
	Metadata engine.Metadata `json:"metadata" yaml:"metadata"`
}

// Entry is one resource line
type Entry struct {
	Quantity    int                `json:"quantity" yaml:"quantity"`
	Enchantment types.Enchantment  `json:"enchantment" yaml:"enchantment"`
	Tier        types.Tier         `json:"tier" yaml:"tier"`
	Type        types.ResourceType `json:"type" yaml:"type"`
	Name        string             `json:"name" yaml:"name"`
	Text        string             `json:"text" yaml:"text"`
}

// Cost is the priced view of the need listing. Amounts are decimal strings.
type Cost struct {
	Lines    []CostLine `json:"lines" yaml:"lines"`
	Total    string     `json:"total" yaml:"total"`
	Unpriced int        `json:"unpriced" yaml:"unpriced"`
}

// CostLine is the cost of one need
type CostLine struct {
	Text   string `json:"text" yaml:"text"`
	Each   string `json:"each,omitempty" yaml:"each,omitempty"`
	Total  string `json:"total,omitempty" yaml:"total,omitempty"`
	Priced bool   `json:"priced" yaml:"priced"`
}

// NewReport builds a report from a run result. est may be nil when no prices
// are known; crafted supply is included only when showCrafted is set.
func NewReport(result *engine.Result, est *pricing.Estimate, showCrafted bool) *Report {
	r := &Report{
		Haves:    entries(result.Haves),
		Needs:    entries(result.Needs),
		Metadata: result.Metadata,
	}
	if showCrafted {
		r.Crafted = entries(result.Crafted)
	}
	if est != nil {
		r.Cost = costView(est)
	}
	return r
}

func entries(rs []*resource.Resource) []Entry {
	out := make([]Entry, 0, len(rs))
	for _, res := range rs {
		out = append(out, Entry{
			Quantity:    res.Quantity(),
			Enchantment: res.Enchantment(),
			Tier:        res.Tier(),
			Type:        res.Type(),
			Name:        res.Name(),
			Text:        res.String(),
		})
	}
	return out
}

func costView(est *pricing.Estimate) *Cost {
	c := &Cost{
		Lines:    make([]CostLine, 0, len(est.Lines)),
		Total:    est.Total.String(),
		Unpriced: est.Unpriced,
	}
	for _, line := range est.Lines {
		cl := CostLine{Text: line.Text, Priced: line.Priced}
		if line.Priced {
			cl.Each = line.Each.String()
			cl.Total = line.Total.String()
		}
		c.Lines = append(c.Lines, cl)
	}
	return c
}
