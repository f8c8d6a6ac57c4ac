package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - indigo/blue theme
	brandColor     = lipgloss.Color("#312E81") // Indigo 900
	brandAccent    = lipgloss.Color("#60A5FA") // Blue 400
	headerColor    = lipgloss.Color("#1D4ED8") // Blue 700
	headerSubColor = lipgloss.Color("#DBEAFE") // Blue 100
	primaryColor   = lipgloss.Color("#2563EB") // Blue 600
	secondaryColor = lipgloss.Color("#93C5FD") // Blue 300
	errorColor     = lipgloss.Color("#DC2626") // Red 600
	mutedColor     = lipgloss.Color("#6B7280") // Gray 500
	textColor      = lipgloss.Color("#F9FAFB") // Gray 50
	footerColor    = lipgloss.Color("#1F2937") // Gray 800
	footerText     = lipgloss.Color("#D1D5DB") // Gray 300

	// Shell
	sidebarStyle = lipgloss.NewStyle().
			Background(brandColor).
			Foreground(textColor).
			Padding(1, 2)

	brandStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(brandColor).
			Bold(true)

	brandAccentStyle = lipgloss.NewStyle().
				Foreground(brandAccent).
				Background(brandColor).
				Bold(true)

	navItemStyle = lipgloss.NewStyle().
			Foreground(footerText).
			Background(brandColor).
			PaddingTop(2)

	headerStyle = lipgloss.NewStyle().
			Background(headerColor).
			Foreground(textColor).
			Bold(true).
			Padding(0, 2)

	headerSubtitleStyle = lipgloss.NewStyle().
				Background(headerColor).
				Foreground(headerSubColor).
				Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Background(footerColor).
			Foreground(footerText).
			Align(lipgloss.Center)

	// Form
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingBottom(1)

	uploadStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Center).
			Padding(1, 1)

	uploadActiveStyle = uploadStyle.
				BorderForeground(brandAccent)

	uploadStatusStyle = lipgloss.NewStyle().
				Foreground(primaryColor)

	buttonStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textColor).
			Bold(true).
			Align(lipgloss.Center)

	buttonFocusedStyle = buttonStyle.
				Background(headerColor).
				Underline(true)

	buttonDisabledStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#4B5563")).
				Foreground(lipgloss.Color("#9CA3AF")).
				Align(lipgloss.Center)

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor)

	blurredBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(mutedColor)

	// Status
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(0, 1)

	// Results
	inputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	resultPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			PaddingBottom(1)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)
