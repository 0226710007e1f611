package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders the report as markdown tables
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	var b strings.Builder

	b.WriteString("## You have\n\n")
	writeEntryTable(&b, report.Haves)

	b.WriteString("\n## You need to buy\n\n")
	if len(report.Needs) == 0 {
		b.WriteString("_Nothing._\n")
	} else {
		writeEntryTable(&b, report.Needs)
	}

	if len(report.Crafted) > 0 {
		b.WriteString("\n## Crafted along the way\n\n")
		writeEntryTable(&b, report.Crafted)
	}

	if report.Cost != nil {
		b.WriteString("\n## Cost\n\n")
		b.WriteString("| Resource | Each | Total |\n|---|---:|---:|\n")
		for _, line := range report.Cost.Lines {
			each, total := line.Each, line.Total
			if !line.Priced {
				each, total = "-", "-"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", line.Text, each, total)
		}
		fmt.Fprintf(&b, "\n**Total:** %s\n", report.Cost.Total)
	}

	fmt.Fprintf(&b, "\n<sub>run %s, remainder %s, depth %s</sub>\n",
		report.Metadata.RunID, report.Metadata.Remainder, report.Metadata.Depth)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeEntryTable(b *strings.Builder, entries []Entry) {
	b.WriteString("| Quantity | Resource | Tier | Enchantment |\n|---:|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %d | %s | %s | %s |\n", e.Quantity, e.Name, e.Tier, e.Enchantment)
	}
}
