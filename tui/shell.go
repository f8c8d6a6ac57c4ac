package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth      = 28
	sidebarBreakpoint = 100
	defaultMainWidth  = 80

	copyright = "© 2025 Judgment Appealability Analyzer. All rights reserved."
)

// renderSidebar draws the branding column. The navigation entry is a
// placeholder and has no behavior.
func (m Model) renderSidebar() string {
	var s strings.Builder

	s.WriteString(brandStyle.Render("🧠 AI") + brandAccentStyle.Render(" POLICE") + "\n")
	s.WriteString(navItemStyle.Render("📚 Previous Reports"))

	return sidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height).
		Render(s.String())
}

func (m Model) renderHeader(width int) string {
	title := headerStyle.Width(width).Render("⚖  Judgment Appealability Analyzer")
	subtitle := headerSubtitleStyle.Width(width).Render("Upload legal documents and analyze appealability")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m Model) renderFooter(width int) string {
	help := "Tab to move, Ctrl+O to upload, Ctrl+S to analyze, PgUp/PgDn to scroll, Ctrl+C to quit"
	if m.picking {
		help = "Esc to return to the form, Ctrl+C to quit"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		helpStyle.Width(width).Render(help),
		footerStyle.Width(width).Render(copyright),
	)
}

// chromeHeight is the number of rows the header and footer take at the
// current width. The help line wraps on narrow terminals.
func (m Model) chromeHeight() int {
	width := m.mainWidth
	if width <= 0 {
		width = defaultMainWidth
	}
	return lipgloss.Height(m.renderHeader(width)) + lipgloss.Height(m.renderFooter(width))
}

// contentWidth is the usable width inside the main column.
func (m Model) contentWidth() int {
	width := m.mainWidth
	if width <= 0 {
		width = defaultMainWidth
	}
	return width - 4
}
