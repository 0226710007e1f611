package output

import (
	"io"

	"refine-calc/core/ui"
)

const (
	headingHaves   = "You have:"
	headingNeeds   = "To use all your resources, you need to buy:"
	headingCrafted = "Crafted along the way:"
	headingCost    = "Cost:"
)

// CLIFormatter renders plain console listings
type CLIFormatter struct {
	NoColor bool
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the haves, the shopping list and, when present, crafted
// supply and cost
func (f *CLIFormatter) Render(out io.Writer, report *Report) error {
	w := ui.NewWriter(out, f.NoColor)

	w.Header(headingHaves)
	for _, e := range report.Haves {
		w.Line(e.Text)
	}

	w.Line("")
	w.Header(headingNeeds)
	if len(report.Needs) == 0 {
		w.Success("nothing")
	}
	for _, e := range report.Needs {
		w.Line(e.Text)
	}

	if len(report.Crafted) > 0 {
		w.Line("")
		w.Header(headingCrafted)
		for _, e := range report.Crafted {
			w.Line(e.Text)
		}
	}

	if report.Cost != nil {
		w.Line("")
		w.Header(headingCost)
		table := w.NewTable("Resource", "Each", "Total")
		for _, line := range report.Cost.Lines {
			each, total := line.Each, line.Total
			if !line.Priced {
				each, total = "-", "-"
			}
			table.AddRow(line.Text, each, total)
		}
		table.Render()
		w.Line("")

		summary := w.NewPurchaseSummary()
		summary.Total = report.Cost.Total
		summary.Lines = len(report.Cost.Lines)
		summary.Unpriced = report.Cost.Unpriced
		summary.Render()
	}

	return nil
}
