package tui

import "github.com/charmbracelet/lipgloss"

const (
	cardWidth  = 30
	cardHeight = 5
	cardMargin = 1
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#E6373C")).
			Padding(0, 1)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6373C")).
			Underline(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(cardWidth).
			Height(cardHeight).
			Padding(0, 1).
			Margin(0, cardMargin)

	focusedCardStyle = cardStyle.Copy().
				BorderForeground(lipgloss.Color("#E6373C"))

	skeletonStyle = cardStyle.Copy().
			Foreground(lipgloss.Color("238"))

	priceStyle = lipgloss.NewStyle().Bold(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#E6373C")).
			Padding(1, 2).
			Width(52)
)
