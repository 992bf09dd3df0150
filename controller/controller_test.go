package controller

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// switchableViewport lets a test flip the layout mid-session.
type switchableViewport struct {
	mode types.LayoutMode
}

func (v *switchableViewport) LayoutMode() types.LayoutMode { return v.mode }

func newTestController(mode types.LayoutMode, opts ...Option) (*Controller, *switchableViewport) {
	vp := &switchableViewport{mode: mode}
	return New(catalog.Default(), vp, opts...), vp
}

func TestInitialState(t *testing.T) {
	c, _ := newTestController(types.Narrow)

	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, types.ScreenList, c.Screen())
	assert.False(t, c.CanGoBack())
	assert.Len(t, c.State().Catalog, 3)
}

func TestSelectProductSetsSelectionInAnyLayout(t *testing.T) {
	for _, mode := range []types.LayoutMode{types.Narrow, types.Wide} {
		t.Run(mode.String(), func(t *testing.T) {
			for i, p := range catalog.Default().Products() {
				c, _ := newTestController(mode)
				c.SelectProduct(p)

				got, ok := c.Selected()
				require.True(t, ok, "product %d", i)
				assert.Equal(t, p, got)
				assert.True(t, c.IsSelected(p))
			}
		})
	}
}

func TestNarrowSelectPushesDetail(t *testing.T) {
	c, _ := newTestController(types.Narrow)
	c.SelectIndex(1)

	assert.Equal(t, 1, c.Depth())
	assert.Equal(t, types.ScreenDetail, c.Screen())
	assert.True(t, c.CanGoBack())
}

func TestWideSelectDoesNotNavigate(t *testing.T) {
	c, _ := newTestController(types.Wide)
	c.SelectIndex(0)
	c.SelectIndex(2)

	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, types.ScreenComposite, c.Screen())
	got, _ := c.Selected()
	assert.Equal(t, "Product C", got.Name())
}

func TestPushIsGuardedAtDepthOne(t *testing.T) {
	c, _ := newTestController(types.Narrow)
	c.SelectIndex(0)
	c.SelectIndex(1)

	assert.Equal(t, 1, c.Depth())
	got, _ := c.Selected()
	assert.Equal(t, "Product B", got.Name())
}

func TestGoBackKeepsSelection(t *testing.T) {
	c, _ := newTestController(types.Narrow)
	c.SelectIndex(1)
	c.GoBack()

	assert.Equal(t, types.ScreenList, c.Screen())
	got, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Product B", got.Name())
	assert.True(t, c.IsSelected(catalog.Default().At(1)))
}

func TestReenterDetailShowsPreviousSelection(t *testing.T) {
	c, _ := newTestController(types.Narrow)
	c.SelectIndex(2)
	c.GoBack()
	c.SelectIndex(2)

	got, _ := c.Selected()
	assert.Equal(t, "Product C", got.Name())
	assert.Equal(t, types.ScreenDetail, c.Screen())
}

func TestGoBackPreconditions(t *testing.T) {
	t.Run("narrow list", func(t *testing.T) {
		c, _ := newTestController(types.Narrow)
		assert.Panics(t, c.GoBack)
	})

	t.Run("wide composite", func(t *testing.T) {
		c, _ := newTestController(types.Wide)
		c.SelectIndex(0)
		assert.Panics(t, c.GoBack)
	})
}

func TestSelectNonMemberPanics(t *testing.T) {
	c, _ := newTestController(types.Narrow)
	assert.Panics(t, func() {
		c.SelectProduct(types.NewProduct("Product D", "$1", ""))
	})
	assert.Panics(t, func() { c.SelectIndex(3) })
	assert.Panics(t, func() { c.SelectIndex(-1) })
}

func TestLayoutSwitchPreservesSelection(t *testing.T) {
	c, vp := newTestController(types.Narrow)
	c.SelectIndex(1)
	before := c.State()

	vp.mode = types.Wide
	wide := c.State()
	assert.Equal(t, types.ScreenComposite, wide.Screen)
	assert.Equal(t, before.Selected, wide.Selected)
	assert.True(t, wide.HasSelection)

	vp.mode = types.Narrow
	after := c.State()
	if diff := cmp.Diff(before, after, cmp.AllowUnexported(types.Product{})); diff != "" {
		t.Fatalf("state changed across layout round trip (-before +after):\n%s", diff)
	}
}

func TestOnChangeNotifiesEveryMutation(t *testing.T) {
	var seen []State
	c, _ := newTestController(types.Narrow, WithOnChange(func(s State) {
		seen = append(seen, s)
	}))

	c.SelectIndex(0)
	c.GoBack()
	c.SelectIndex(1)

	require.Len(t, seen, 3)
	assert.Equal(t, types.ScreenDetail, seen[0].Screen)
	assert.Equal(t, types.ScreenList, seen[1].Screen)
	assert.Equal(t, "Product A", seen[1].Selected.Name())
	assert.Equal(t, "Product B", seen[2].Selected.Name())
	assert.Equal(t, uint64(3), seen[2].Revision)
}

func TestScenarioTapBThenBack(t *testing.T) {
	c, _ := newTestController(types.Narrow)

	c.SelectProduct(types.NewProduct("Product B", "$150", "This is product B with more features."))
	s := c.State()
	assert.Equal(t, types.ScreenDetail, s.Screen)
	assert.Equal(t, "Product B", s.Selected.Name())
	assert.Equal(t, "$150", s.Selected.Price())
	assert.Equal(t, "This is product B with more features.", s.Selected.Description())

	c.GoBack()
	s = c.State()
	assert.Equal(t, types.ScreenList, s.Screen)
	assert.Equal(t, "Product B", s.Selected.Name())
}

func TestNilViewportPanics(t *testing.T) {
	assert.Panics(t, func() { New(catalog.Default(), nil) })
}
