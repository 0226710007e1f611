package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Qty", "Name")
	table.AddRow("50", "bronze bar")
	table.AddRow("1", "iron ore", "ignored")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Qty │ Name" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != "50  │ bronze bar" {
		t.Errorf("unexpected row %q", lines[2])
	}
	if lines[3] != "1   │ iron ore" {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestNoColor(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, true).Header("To use all your resources, you need to buy:")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected no escape codes, got %q", buf.String())
	}
}

func TestColor(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, false).Header("You have:")

	if !strings.HasPrefix(buf.String(), Bold+Cyan) {
		t.Errorf("expected colored header, got %q", buf.String())
	}
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Success("nothing")
	w.Error("Malformed input [%s] %s", "5xyz4", "unknown type")

	want := "✓ nothing\n✗ Malformed input [5xyz4] unknown type\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestErrorColor(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, false).Error("bad")

	if !strings.HasPrefix(buf.String(), Red+"✗ "+Reset) {
		t.Errorf("expected red marker, got %q", buf.String())
	}
}

func TestPurchaseSummaryWarnsUnpriced(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	s := w.NewPurchaseSummary()
	s.Total = "62.8"
	s.Lines = 3
	s.Unpriced = 1
	s.Render()

	out := buf.String()
	if !strings.Contains(out, "Total cost: 62.8") {
		t.Errorf("missing total in %q", out)
	}
	if !strings.Contains(out, "1 lines have no price") {
		t.Errorf("missing unpriced warning in %q", out)
	}
}
