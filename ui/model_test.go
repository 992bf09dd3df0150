package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	narrowWidth = 60
	wideWidth   = 120
	termHeight  = 20
)

func newTestModel(t *testing.T, width int, opts ...Option) Model {
	t.Helper()
	m := NewModel(catalog.Default(), opts...)
	return resize(t, m, width, termHeight)
}

func resize(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	return send(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update must return ui.Model")
	return result
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: k})
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	return send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func selectedName(m Model) string {
	p, ok := m.Controller().Selected()
	if !ok {
		return ""
	}
	return p.Name()
}

func TestNarrowInitialShowsList(t *testing.T) {
	m := newTestModel(t, narrowWidth)
	view := m.View()

	assert.Equal(t, types.ScreenList, m.Controller().Screen())
	assert.Contains(t, view, appTitle)
	for _, name := range []string{"Product A", "Product B", "Product C"} {
		assert.Contains(t, view, name)
	}
	assert.NotContains(t, view, detailBarTitle)
}

func TestNarrowEnterOpensDetailInFieldOrder(t *testing.T) {
	m := newTestModel(t, narrowWidth)
	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyEnter)

	require.Equal(t, types.ScreenDetail, m.Controller().Screen())
	assert.Equal(t, "Product B", selectedName(m))

	view := m.View()
	assert.Contains(t, view, detailBarTitle)
	assert.NotContains(t, view, placeholderText)

	name := strings.Index(view, "Product B")
	price := strings.Index(view, "$150")
	desc := strings.Index(view, "This is product B with more features.")
	require.True(t, name >= 0 && price >= 0 && desc >= 0, "detail fields missing:\n%s", view)
	assert.Less(t, name, price)
	assert.Less(t, price, desc)
	assert.NotContains(t, view, "Product A")
}

func TestBackKeepsSelection(t *testing.T) {
	m := newTestModel(t, narrowWidth)
	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyEnter)
	m = press(t, m, tea.KeyEsc)

	assert.Equal(t, types.ScreenList, m.Controller().Screen())
	assert.Equal(t, "Product B", selectedName(m))

	var highlighted string
	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "●") {
			highlighted = line
		}
	}
	assert.Contains(t, highlighted, "Product B")
}

func TestBackKeyIgnoredOnList(t *testing.T) {
	m := newTestModel(t, narrowWidth)
	assert.NotPanics(t, func() {
		m = press(t, m, tea.KeyEsc)
	})
	assert.Equal(t, types.ScreenList, m.Controller().Screen())
}

func TestWideShowsBothPanes(t *testing.T) {
	m := newTestModel(t, wideWidth)

	require.Equal(t, types.ScreenComposite, m.Controller().Screen())
	view := m.View()
	assert.Contains(t, view, "Product A")
	assert.Contains(t, view, placeholderText)

	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, types.ScreenComposite, m.Controller().Screen())
	assert.Equal(t, "Product A", selectedName(m))

	view = m.View()
	assert.Contains(t, view, "This is a great product A.")
	assert.Contains(t, view, "Product C")
	assert.NotContains(t, view, placeholderText)
	assert.NotContains(t, view, detailBarTitle)
}

func TestLayoutSwitchPreservesSelection(t *testing.T) {
	m := newTestModel(t, narrowWidth)
	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyEnter)
	require.Equal(t, types.ScreenDetail, m.Controller().Screen())

	m = resize(t, m, wideWidth, termHeight)
	assert.Equal(t, types.ScreenComposite, m.Controller().Screen())
	assert.Equal(t, "Product B", selectedName(m))
	assert.Contains(t, m.View(), "This is product B with more features.")

	m = resize(t, m, narrowWidth, termHeight)
	assert.Equal(t, types.ScreenDetail, m.Controller().Screen())
	assert.Equal(t, "Product B", selectedName(m))
}

func TestForcedLayoutIgnoresSize(t *testing.T) {
	m := newTestModel(t, wideWidth, WithForcedLayout(types.Narrow))
	assert.Equal(t, types.ScreenList, m.Controller().Screen())

	m = newTestModel(t, 40, WithForcedLayout(types.Wide))
	assert.Equal(t, types.ScreenComposite, m.Controller().Screen())
}

func TestWideThresholdOption(t *testing.T) {
	m := newTestModel(t, 90, WithWideThreshold(80))
	assert.Equal(t, types.ScreenComposite, m.Controller().Screen())
}

func TestMouseSelectsRowAndGoesBack(t *testing.T) {
	m := newTestModel(t, narrowWidth)

	m = click(t, m, 4, headerHeight+2)
	require.Equal(t, types.ScreenDetail, m.Controller().Screen())
	assert.Equal(t, "Product C", selectedName(m))

	m = click(t, m, 1, headerHeight)
	assert.Equal(t, types.ScreenList, m.Controller().Screen())
	assert.Equal(t, "Product C", selectedName(m))
}

func TestMouseOutsideRowsIsIgnored(t *testing.T) {
	m := newTestModel(t, wideWidth)

	m = click(t, m, 4, 0)
	m = click(t, m, 4, headerHeight+10)
	lw, _ := paneWidths(wideWidth)
	m = click(t, m, lw+5, headerHeight)

	_, ok := m.Controller().Selected()
	assert.False(t, ok)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, narrowWidth)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWindowSizeZeroDoesNotPanic(t *testing.T) {
	m := NewModel(catalog.Default())
	assert.NotPanics(t, func() {
		m = resize(t, m, 0, 0)
		_ = m.View()
	})
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, narrowWidth)
	short := m.View()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
}
