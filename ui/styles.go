package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaSelection  = lipgloss.AdaptiveColor{Light: "252", Dark: "240"}

	// Header
	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)

	// List styles
	ItemStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			PaddingLeft(1)
	CursorItemStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			PaddingLeft(1)
	SelectedItemStyle = lipgloss.NewStyle().
				Background(DraculaSelection)
	PriceStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen)

	// Detail view styles
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailPriceStyle = lipgloss.NewStyle().
				Foreground(DraculaGreen)
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Italic(true)
	DetailPaneStyle = lipgloss.NewStyle().
			Padding(0, 2)

	// Back bar shown above the narrow detail screen
	TopBarStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground).
			Bold(true).
			Padding(0, 1)
	BackArrowStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)

	// Pane separator in the wide layout
	DividerStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Help
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
)
