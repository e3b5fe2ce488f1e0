package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorFgPrimary = lipgloss.Color("#ABB2BF")
	colorFgMuted   = lipgloss.Color("#636B78")
	colorRed       = lipgloss.Color("#E06C75")
	colorGreen     = lipgloss.Color("#98C379")
	colorYellow    = lipgloss.Color("#E5C07B")
	colorBlue      = lipgloss.Color("#61AFEF")
	colorMagenta   = lipgloss.Color("#C678DD")
	colorBorder    = lipgloss.Color("#3F4451")
)

// Component styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			PaddingLeft(1)

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	listTitleStyle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	listItemStyle = lipgloss.NewStyle().
			Foreground(colorFgPrimary)

	listSelectedStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	listFinishedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	quotaStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	resultAcceptedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	resultRejectedStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorFgMuted)

	loginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 3)

	loginLabelStyle = lipgloss.NewStyle().
			Foreground(colorFgMuted)
)
