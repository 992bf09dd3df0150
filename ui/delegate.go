package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
)

// ProductDelegate renders one catalog row. The row equal to the current
// selection is highlighted; the keyboard cursor is marked separately.
type ProductDelegate struct {
	isSelected func(types.Product) bool
}

// Height returns the height of a list item (1 line)
func (d ProductDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between list items
func (d ProductDelegate) Spacing() int {
	return 0
}

// Update handles updates for the delegate (no-op for products)
func (d ProductDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single product row: "›● Name        $100"
func (d ProductDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	product, ok := item.(types.Product)
	if !ok {
		return
	}

	fmt.Fprint(w, renderRow(product, m.Width(), index == m.Index(), d.isSelected != nil && d.isSelected(product)))
}

func renderRow(product types.Product, width int, isCursor, isSelected bool) string {
	cursor, mark := " ", " "
	nameStyle := ItemStyle
	if isCursor {
		cursor = "›"
		nameStyle = CursorItemStyle
	}
	if isSelected {
		mark = "●"
	}
	marker := cursor + mark + " "

	price := product.Price()
	name := product.Name()

	// 1 for style padding, 1 for the gap before the price
	available := width - lipgloss.Width(marker) - lipgloss.Width(price) - 2
	if available < 1 {
		available = 1
	}
	name = truncate(name, available)
	gap := available - lipgloss.Width(name)
	if gap < 0 {
		gap = 0
	}

	row := nameStyle.Render(marker+name) + strings.Repeat(" ", gap+1) + PriceStyle.Render(price)
	if isSelected {
		return SelectedItemStyle.Width(width).Render(row)
	}
	return row
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
