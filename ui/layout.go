package ui

import "github.com/qyinm/shoptui/types"

// termSize tracks the terminal dimensions and answers the controller's
// layout query. The Model and its copies share one termSize, so the answer
// always reflects the latest WindowSizeMsg.
type termSize struct {
	width     int
	height    int
	threshold int
	forced    *types.LayoutMode
}

// LayoutMode is wide once the terminal is at least threshold columns across.
// A forced mode wins over the size.
func (s *termSize) LayoutMode() types.LayoutMode {
	if s.forced != nil {
		return *s.forced
	}
	if s.width >= s.threshold {
		return types.Wide
	}
	return types.Narrow
}

var _ types.Viewport = (*termSize)(nil)

const (
	headerHeight = 1
	topBarHeight = 1
)

// paneWidths splits the terminal between the list and detail panes in the
// wide layout; one column goes to the divider.
func paneWidths(total int) (list, detail int) {
	if total < 3 {
		return total, 0
	}
	list = (total - 1) / 2
	detail = total - 1 - list
	return list, detail
}
