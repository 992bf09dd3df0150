package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/shoptui/types"
)

func TestRenderDetailPlaceholder(t *testing.T) {
	out := renderDetail(types.Product{}, false, 50)
	if !strings.Contains(out, placeholderText) {
		t.Fatalf("expected placeholder, got %q", out)
	}
}

func TestRenderDetailFieldOrder(t *testing.T) {
	p := types.NewProduct("Product C", "$200", "Premium product C.")
	out := ansi.Strip(renderDetail(p, true, 44))

	name := strings.Index(out, "Product C")
	price := strings.Index(out, "$200")
	desc := strings.Index(out, "Premium product C.")
	if name < 0 || price < 0 || desc < 0 {
		t.Fatalf("missing fields in %q", out)
	}
	if !(name < price && price < desc) {
		t.Fatalf("fields out of order: name=%d price=%d desc=%d", name, price, desc)
	}
	if strings.Contains(out, placeholderText) {
		t.Fatal("placeholder must not render alongside a product")
	}
}

func TestRenderDetailKeepsDescriptionVerbatim(t *testing.T) {
	tests := []struct {
		name string
		desc string
	}{
		{name: "heading marker", desc: "# 1 best seller"},
		{name: "emphasis and underscores", desc: "Save *20%* on item_a_b_c"},
		{name: "html tags", desc: "<b>bold</b> deal"},
		{name: "link syntax", desc: "[docs](https://example.com) `code`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(renderDetail(types.NewProduct("X", "$1", tt.desc), true, 64))
			if !strings.Contains(out, tt.desc) {
				t.Fatalf("description rewritten: want %q in\n%s", tt.desc, out)
			}
		})
	}
}

func TestRenderRowMarkers(t *testing.T) {
	p := types.NewProduct("Product A", "$100", "")

	tests := []struct {
		name       string
		cursor     bool
		selected   bool
		wantCursor bool
		wantMark   bool
	}{
		{name: "plain"},
		{name: "cursor", cursor: true, wantCursor: true},
		{name: "selected", selected: true, wantMark: true},
		{name: "both", cursor: true, selected: true, wantCursor: true, wantMark: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := renderRow(p, 30, tt.cursor, tt.selected)
			if got := strings.Contains(row, "›"); got != tt.wantCursor {
				t.Errorf("cursor marker = %v, want %v: %q", got, tt.wantCursor, row)
			}
			if got := strings.Contains(row, "●"); got != tt.wantMark {
				t.Errorf("selection marker = %v, want %v: %q", got, tt.wantMark, row)
			}
			if !strings.Contains(row, "$100") {
				t.Errorf("price missing: %q", row)
			}
			if w := lipgloss.Width(row); w > 30 {
				t.Errorf("row wider than pane: %d", w)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Product A", 20); got != "Product A" {
		t.Fatalf("unexpected truncate: %q", got)
	}
	if got := truncate("Product A", 5); got != "Prod…" {
		t.Fatalf("unexpected truncate: %q", got)
	}
}

func TestPaneWidths(t *testing.T) {
	l, d := paneWidths(120)
	if l+d+1 != 120 {
		t.Fatalf("panes do not fill width: %d + %d + 1", l, d)
	}
	if l, d := paneWidths(2); l != 2 || d != 0 {
		t.Fatalf("tiny width split: %d/%d", l, d)
	}
}
