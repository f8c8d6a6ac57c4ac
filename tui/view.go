package tui

import (
	"strings"

	"judgment-analyzer/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	uploadPanelWidth = 30
	formChrome       = 9
	minInputWidth    = 20
)

// View implements tea.Model
func (m Model) View() string {
	width := m.mainWidth
	if width <= 0 {
		width = defaultMainWidth
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(width),
		m.renderViewport(),
		m.renderFooter(width),
	)

	if m.sidebarWidth == 0 {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

// renderViewport shows the visible slice of the body, honoring scrollOffset
func (m Model) renderViewport() string {
	body := lipgloss.NewStyle().Padding(1, 2).Render(m.renderBody())
	height := m.bodyHeight()
	if height <= 0 {
		return body
	}

	lines := strings.Split(body, "\n")
	start := m.scrollOffset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[start:end]
	for len(visible) < height {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

// bodyHeight is the number of rows available between header and footer,
// or 0 before the terminal size is known.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - m.chromeHeight()
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) bodyLineCount() int {
	return lipgloss.Height(lipgloss.NewStyle().Padding(1, 2).Render(m.renderBody()))
}

func (m Model) renderBody() string {
	if m.picking {
		return m.viewPicker()
	}
	return m.viewForm()
}

func (m Model) viewForm() string {
	width := m.contentWidth()
	var s strings.Builder

	textBox := blurredBorderStyle
	if m.focus == FocusText {
		textBox = focusedBorderStyle
	}
	textColumn := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Judgment Text"),
		textBox.Render(m.input.View()),
	)
	uploadColumn := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Upload Document"),
		m.renderUploadPanel(),
	)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, textColumn, "  ", uploadColumn) + "\n\n")

	s.WriteString(m.renderSubmitButton(width) + "\n")

	if m.errorMessage != "" {
		s.WriteString("\n" + errorBoxStyle.Width(width-2).Render(errorStyle.Render("⚠ "+m.errorMessage)) + "\n")
	}

	if m.result != nil {
		s.WriteString("\n" + m.renderResults(width))
	}

	return s.String()
}

func (m Model) renderUploadPanel() string {
	var s strings.Builder

	if m.isExtracting {
		s.WriteString(m.spinner.View() + "\n")
		s.WriteString(labelStyle.UnsetPaddingBottom().Render("Processing PDF...") + "\n")
	} else {
		s.WriteString("⬆\n")
		s.WriteString(labelStyle.UnsetPaddingBottom().Render("Upload PDF") + "\n")
		s.WriteString(helpStyle.Render("Enter or Ctrl+O to browse") + "\n")
	}

	if m.uploadStatus != "" {
		for _, line := range utils.WrapText(m.uploadStatus, uploadPanelWidth-4) {
			s.WriteString("\n" + uploadStatusStyle.Render(line))
		}
	}

	style := uploadStyle
	if m.isExtracting || m.focus == FocusUpload {
		style = uploadActiveStyle
	}
	return style.Width(uploadPanelWidth - 2).Render(strings.TrimRight(s.String(), "\n"))
}

func (m Model) renderSubmitButton(width int) string {
	label := "Analyze Appealability"
	if m.isAnalyzing {
		label = m.spinner.View() + " Analyzing..."
	}

	style := buttonStyle
	switch {
	case m.submitDisabled():
		style = buttonDisabledStyle
	case m.focus == FocusSubmit:
		style = buttonFocusedStyle
	}
	return style.Width(width).Render(label)
}

func (m Model) renderResults(width int) string {
	inner := width - 4

	var input strings.Builder
	input.WriteString(panelTitleStyle.Render("Input Text") + "\n")
	input.WriteString(strings.Join(utils.WrapText(m.judgmentText, inner), "\n"))

	var analysis strings.Builder
	analysis.WriteString(panelTitleStyle.Render("Analysis Results") + "\n")
	analysis.WriteString(sectionTitleStyle.Render("Summary") + "\n")
	analysis.WriteString(strings.Join(utils.WrapText(m.result.JudgmentSummary, inner), "\n") + "\n\n")
	analysis.WriteString(sectionTitleStyle.Render("Analysis") + "\n")
	analysis.WriteString(strings.Join(utils.WrapText(m.result.Analysis, inner), "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		inputPanelStyle.Width(width-2).Render(input.String()),
		"",
		resultPanelStyle.Width(width-2).Render(analysis.String()),
	)
}
