package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
)

const placeholderText = "Select a product to view details."

// renderDetail projects the selection into the detail pane body: the
// placeholder when nothing is selected, otherwise name, price and
// description stacked in that order. Catalog text is shown as stored,
// only wrapped to the pane width.
func renderDetail(product types.Product, ok bool, width int) string {
	if width < 1 {
		width = 1
	}
	if !ok {
		return PlaceholderStyle.Width(width).Align(lipgloss.Center).Render(placeholderText)
	}

	inner := width - DetailPaneStyle.GetHorizontalPadding()
	if inner < 1 {
		inner = 1
	}
	wrap := lipgloss.NewStyle().Width(inner)

	blocks := []string{
		wrap.Render(DetailTitleStyle.Render(product.Name())),
		wrap.Render(DetailPriceStyle.Render(product.Price())),
		wrap.Render(product.Description()),
	}
	return DetailPaneStyle.Render(strings.Join(blocks, "\n\n"))
}
