// Package controller implements the selection and navigation model behind
// the shopping list: which product is selected, and whether the narrow
// layout is showing the list or the detail screen.
//
// A Controller is not safe for concurrent use. Callers that mutate it from
// more than one goroutine must serialize access.
package controller

import (
	"fmt"

	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/types"
	"go.uber.org/zap"
)

const (
	depthList   = 0
	depthDetail = 1
)

// State is a read-only snapshot used for rendering.
type State struct {
	Catalog      []types.Product
	Selected     types.Product
	HasSelection bool
	Depth        int
	Layout       types.LayoutMode
	Screen       types.Screen
	Revision     uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition debug entries.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnChange registers a callback invoked after every mutation.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller owns the catalog, the selection and the single-slot nav stack.
type Controller struct {
	catalog      catalog.Catalog
	viewport     types.Viewport
	selected     types.Product
	hasSelection bool
	depth        int
	revision     uint64
	onChange     func(State)
	logger       *zap.Logger
}

// New creates a Controller. The viewport is asked for the layout mode on
// every decision; it is never cached.
func New(cat catalog.Catalog, viewport types.Viewport, opts ...Option) *Controller {
	if viewport == nil {
		panic("controller: nil viewport")
	}
	c := &Controller{
		catalog:  cat,
		viewport: viewport,
		depth:    depthList,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the catalog the controller was built with.
func (c *Controller) Catalog() catalog.Catalog { return c.catalog }

// Layout reports the viewport's current layout mode.
func (c *Controller) Layout() types.LayoutMode { return c.viewport.LayoutMode() }

// Selected returns the selected product, if any.
func (c *Controller) Selected() (types.Product, bool) {
	return c.selected, c.hasSelection
}

// Depth returns the nav stack depth: 0 for the list, 1 for the detail.
func (c *Controller) Depth() int { return c.depth }

// IsSelected reports whether p equals the current selection.
func (c *Controller) IsSelected(p types.Product) bool {
	return c.hasSelection && c.selected == p
}

// Screen resolves what is presented right now. The wide layout has a single
// composite screen; the narrow layout follows the nav stack.
func (c *Controller) Screen() types.Screen {
	if c.Layout() == types.Wide {
		return types.ScreenComposite
	}
	if c.depth == depthDetail {
		return types.ScreenDetail
	}
	return types.ScreenList
}

// SelectProduct makes p the selection. In the narrow layout it also pushes
// the detail screen; pushing onto an occupied slot does nothing. p must be a
// catalog member.
func (c *Controller) SelectProduct(p types.Product) {
	if !c.catalog.Contains(p) {
		panic(fmt.Sprintf("controller: SelectProduct(%q): product is not in the catalog", p.Name()))
	}

	c.selected = p
	c.hasSelection = true

	layout := c.Layout()
	pushed := false
	if layout == types.Narrow && c.depth == depthList {
		c.depth = depthDetail
		pushed = true
	}

	c.logger.Debug("product selected",
		zap.String("product", p.Name()),
		zap.Stringer("layout", layout),
		zap.Bool("pushed_detail", pushed),
	)
	c.changed()
}

// SelectIndex selects the catalog entry at position i.
func (c *Controller) SelectIndex(i int) {
	if i < 0 || i >= c.catalog.Len() {
		panic(fmt.Sprintf("controller: SelectIndex(%d): out of range [0,%d)", i, c.catalog.Len()))
	}
	c.SelectProduct(c.catalog.At(i))
}

// CanGoBack reports whether GoBack is currently valid.
func (c *Controller) CanGoBack() bool {
	return c.Screen() == types.ScreenDetail
}

// GoBack pops the detail screen. The selection is kept, so re-entering the
// detail screen shows the same product. Calling GoBack anywhere but on the
// narrow detail screen is a programming error.
func (c *Controller) GoBack() {
	if !c.CanGoBack() {
		panic(fmt.Sprintf("controller: GoBack on %s screen (depth %d)", c.Screen(), c.depth))
	}
	c.depth = depthList

	c.logger.Debug("navigated back", zap.Bool("has_selection", c.hasSelection))
	c.changed()
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{
		Catalog:      c.catalog.Products(),
		Selected:     c.selected,
		HasSelection: c.hasSelection,
		Depth:        c.depth,
		Layout:       c.Layout(),
		Screen:       c.Screen(),
		Revision:     c.revision,
	}
}

func (c *Controller) changed() {
	c.revision++
	if c.onChange != nil {
		c.onChange(c.State())
	}
}
