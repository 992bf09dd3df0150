package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/controller"
	"github.com/qyinm/shoptui/types"
	"go.uber.org/zap"
)

const (
	appTitle       = "Shopping List"
	detailBarTitle = "Product Details"

	defaultWideThreshold = 100
)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for UI and controller events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithWideThreshold sets the column count at which the wide layout starts.
func WithWideThreshold(cols int) Option {
	return func(m *Model) {
		if cols > 0 {
			m.size.threshold = cols
		}
	}
}

// WithForcedLayout pins the layout regardless of terminal size.
func WithForcedLayout(mode types.LayoutMode) Option {
	return func(m *Model) {
		m.size.forced = &mode
	}
}

// Model is the main TUI model
type Model struct {
	ctrl     *controller.Controller
	size     *termSize
	list     list.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	logger   *zap.Logger
}

// NewModel creates a new Model over the given catalog
func NewModel(cat catalog.Catalog, opts ...Option) Model {
	m := Model{
		size:     &termSize{threshold: defaultWideThreshold},
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     keys,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.ctrl = controller.New(cat, m.size, controller.WithLogger(m.logger.Named("controller")))

	items := make([]list.Item, 0, cat.Len())
	for _, p := range cat.Products() {
		items = append(items, p)
	}
	l := list.New(items, ProductDelegate{isSelected: m.ctrl.IsSelected}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	m.list = l

	m.help.Styles.ShortKey = HelpKeyStyle
	m.help.Styles.ShortDesc = HelpDescStyle
	m.help.Styles.FullKey = HelpKeyStyle
	m.help.Styles.FullDesc = HelpDescStyle

	return m
}

// Controller exposes the selection/navigation state behind the view.
func (m Model) Controller() *controller.Controller { return m.ctrl }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.width = msg.Width
		m.size.height = msg.Height
		m.resizePanes()
		m.logger.Debug("window resized",
			zap.Int("width", msg.Width),
			zap.Int("height", msg.Height),
			zap.Stringer("layout", m.size.LayoutMode()),
		)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resizePanes()
			return m, nil
		}

		// Delegate to list or viewport based on screen
		if m.ctrl.Screen() == types.ScreenDetail {
			if key.Matches(msg, m.keys.Back) {
				m.goBack()
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if key.Matches(msg, m.keys.Enter) {
			m.selectAt(m.list.Index())
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current screen
func (m Model) View() string {
	header := TitleStyle.Render(appTitle)

	var body string
	switch m.ctrl.Screen() {
	case types.ScreenComposite:
		lw, _ := paneWidths(m.size.width)
		h := m.bodyHeight()
		divider := DividerStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
		listPane := lipgloss.NewStyle().Width(lw).Render(m.list.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, listPane, divider, m.viewport.View())
	case types.ScreenDetail:
		body = m.topBarView() + "\n" + m.viewport.View()
	default:
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView())
}

func (m Model) topBarView() string {
	return TopBarStyle.Render(BackArrowStyle.Render("←") + " " + detailBarTitle)
}

func (m Model) footerView() string {
	km := m.keys
	onDetail := m.ctrl.Screen() == types.ScreenDetail
	km.Back.SetEnabled(onDetail)
	km.Enter.SetEnabled(!onDetail)
	return m.help.View(km)
}

func (m Model) bodyHeight() int {
	h := m.size.height - headerHeight - lipgloss.Height(m.footerView())
	if h < 1 {
		h = 1
	}
	return h
}

// resizePanes adjusts the dimensions of list and viewport based on window
// size and the layout that size implies
func (m *Model) resizePanes() {
	width := m.size.width
	height := m.bodyHeight()
	m.help.Width = width

	if m.size.LayoutMode() == types.Wide {
		listWidth, detailWidth := paneWidths(width)
		m.list.SetSize(listWidth, height)
		m.viewport.Width = detailWidth
		m.viewport.Height = height
	} else {
		m.list.SetSize(width, height)
		m.viewport.Width = width
		m.viewport.Height = height - topBarHeight
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
	}

	m.syncDetail()
}

// syncDetail re-renders the detail pane from the current selection.
func (m *Model) syncDetail() {
	p, ok := m.ctrl.Selected()
	body := renderDetail(p, ok, m.viewport.Width)
	if lipgloss.Height(body) < m.viewport.Height {
		body = lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, body)
	}
	m.viewport.SetContent(body)
}

func (m *Model) selectAt(index int) {
	items := m.list.Items()
	if index < 0 || index >= len(items) {
		return
	}
	product, ok := items[index].(types.Product)
	if !ok {
		return
	}
	m.list.Select(index)
	m.ctrl.SelectProduct(product)
	m.viewport.GotoTop()
	m.syncDetail()
}

func (m *Model) goBack() {
	m.ctrl.GoBack()
	m.viewport.GotoTop()
}

// handleMouse maps a left click to the row or back control under it.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	switch m.ctrl.Screen() {
	case types.ScreenDetail:
		if msg.Y == headerHeight {
			m.goBack()
		}
	case types.ScreenComposite:
		lw, _ := paneWidths(m.size.width)
		if msg.X >= lw {
			return
		}
		fallthrough
	default:
		if idx, ok := m.rowAt(msg.Y); ok {
			m.selectAt(idx)
		}
	}
}

// rowAt returns the catalog index rendered on terminal line y, if any.
func (m Model) rowAt(y int) (int, bool) {
	row := y - headerHeight
	if row < 0 {
		return 0, false
	}
	perRow := ProductDelegate{}.Height() + ProductDelegate{}.Spacing()
	if row%perRow != 0 {
		return 0, false
	}
	start, end := m.list.Paginator.GetSliceBounds(len(m.list.Items()))
	idx := start + row/perRow
	if idx >= end {
		return 0, false
	}
	return idx, true
}
