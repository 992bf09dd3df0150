package types

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

// LayoutMode represents how the shopping list is composed on screen
type LayoutMode int

const (
	Narrow LayoutMode = iota
	Wide
)

// String returns the string representation of the layout mode
func (l LayoutMode) String() string {
	switch l {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// ParseLayoutMode parses "wide" or "narrow" (case-insensitive).
func ParseLayoutMode(raw string) (LayoutMode, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "narrow":
		return Narrow, nil
	case "wide":
		return Wide, nil
	default:
		return Narrow, fmt.Errorf("invalid layout %q; expected wide|narrow", raw)
	}
}

// Screen is the screen currently presented to the user
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
	ScreenComposite
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	case ScreenComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Viewport is queried for the current layout mode every time it matters.
// Implementations must not cache the answer across a size change.
type Viewport interface {
	LayoutMode() LayoutMode
}

// FixedViewport is a Viewport that always reports the same mode.
type FixedViewport LayoutMode

func (f FixedViewport) LayoutMode() LayoutMode { return LayoutMode(f) }

// Product represents a catalog entry. Products are compared by value.
type Product struct {
	name        string
	price       string
	description string
}

// NewProduct creates a new Product with the given fields
func NewProduct(name, price, description string) Product {
	return Product{
		name:        name,
		price:       price,
		description: description,
	}
}

// Getters for Product fields
func (p Product) Name() string  { return p.name }
func (p Product) Price() string { return p.price }

// list.Item interface implementation
func (p Product) Title() string       { return p.name }
func (p Product) Description() string { return p.description }
func (p Product) FilterValue() string { return p.name }

// Compile-time check that Product implements list.Item
var _ list.Item = Product{}
