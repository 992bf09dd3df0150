package dto

import (
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/controller"
	"github.com/qyinm/shoptui/types"
)

func FromProduct(index int, p types.Product) Product {
	return Product{
		Index:       index,
		Name:        p.Name(),
		Price:       p.Price(),
		Description: p.Description(),
	}
}

func FromCatalog(c catalog.Catalog) []Product {
	out := make([]Product, 0, c.Len())
	for i, p := range c.Products() {
		out = append(out, FromProduct(i, p))
	}
	return out
}

func FromMatches(matches []catalog.Match) []SearchHit {
	out := make([]SearchHit, 0, len(matches))
	for _, m := range matches {
		out = append(out, SearchHit{Product: FromProduct(m.Index, m.Product), Distance: m.Distance})
	}
	return out
}

// FromState converts a controller snapshot. The selected product's index is
// its first position in the snapshot's catalog.
func FromState(sessionID string, s controller.State) State {
	out := State{
		SessionID:    sessionID,
		Revision:     s.Revision,
		Layout:       s.Layout.String(),
		Screen:       s.Screen.String(),
		Depth:        s.Depth,
		HasSelection: s.HasSelection,
	}
	if s.HasSelection {
		index := -1
		for i, p := range s.Catalog {
			if p == s.Selected {
				index = i
				break
			}
		}
		p := FromProduct(index, s.Selected)
		out.Selected = &p
	}
	return out
}
