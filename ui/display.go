package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Color helper functions
func ColorTitle(text string) string     { return titleStyle.Render(text) }
func ColorSuccess(text string) string   { return successStyle.Render(text) }
func ColorError(text string) string     { return errorStyle.Render(text) }
func ColorInfo(text string) string      { return infoStyle.Render(text) }
func ColorSection(text string) string   { return sectionStyle.Render(text) }
func ColorHighlight(text string) string { return highlightStyle.Render(text) }
func ColorDimText(text string) string   { return dimStyle.Render(text) }

const sectionWidth = 60

// PrintBanner writes the application banner
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, ColorTitle("⚖  Judgment Appealability Analyzer"))
	fmt.Fprintln(w, ColorDimText("   Upload legal documents and analyze appealability"))
	fmt.Fprintln(w)
}

// PrintSectionHeader writes a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := sectionWidth - lipgloss.Width(headerContent)
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	fmt.Fprintln(w, ColorSection("┌"+headerContent+strings.Repeat("─", remainingWidth)+"┐"))
}

// PrintSectionFooter writes a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, ColorSection("└"+strings.Repeat("─", sectionWidth)+"┘"))
}

// PrintParagraphs writes text indented by two spaces, wrapped lines included
func PrintParagraphs(w io.Writer, lines []string) {
	for _, line := range lines {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintln(w, "  "+ColorInfo(line))
	}
}
