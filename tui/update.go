package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case fileChosenMsg:
		return m.selectFile(selectedFileFromPath(msg.Path))
	case ExtractionResult:
		return m.handleExtractionResult(msg)
	case AnalysisResult:
		return m.handleAnalysisResult(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	}

	// Directory listings and cursor blinks belong to the child components.
	var pickerCmd, inputCmd tea.Cmd
	m.picker, pickerCmd = m.picker.Update(msg)
	m.input, inputCmd = m.input.Update(msg)
	return m, tea.Batch(pickerCmd, inputCmd)
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// The sidebar collapses on narrow terminals
	if m.width >= sidebarBreakpoint {
		m.sidebarWidth = sidebarWidth
	} else {
		m.sidebarWidth = 0
	}
	m.mainWidth = m.width - m.sidebarWidth

	inputWidth := m.mainWidth - uploadPanelWidth - formChrome
	if inputWidth < minInputWidth {
		inputWidth = minInputWidth
	}
	m.input.SetWidth(inputWidth)

	pickerHeight := m.height - m.chromeHeight() - 6
	if pickerHeight < 5 {
		pickerHeight = 5
	}
	m.picker.Height = pickerHeight

	m.clampScroll()
	return m, nil
}

// handleKeyMessage handles keyboard input for the focused control
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.picking {
		return m.updatePicker(msg)
	}

	switch msg.String() {
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	case "ctrl+o":
		return m.openPicker()
	case "ctrl+s":
		return m.submit()
	case "pgup":
		m.scrollBy(-5)
		return m, nil
	case "pgdown":
		m.scrollBy(5)
		return m, nil
	}

	switch m.focus {
	case FocusUpload:
		switch msg.String() {
		case "enter", " ":
			return m.openPicker()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	case FocusSubmit:
		switch msg.String() {
		case "enter", " ":
			return m.submit()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	// Every key the text area consumes overwrites the judgment text.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.judgmentText = m.input.Value()
	return m, cmd
}

// cycleFocus moves focus between the text area, upload and analyze controls
func (m Model) cycleFocus(delta int) (Model, tea.Cmd) {
	m.focus = Focus((int(m.focus) + delta + focusCount) % focusCount)
	if m.focus == FocusText {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

// handleMouseMessage scrolls the form with the mouse wheel
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.picking {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-2)
	case tea.MouseButtonWheelDown:
		m.scrollBy(2)
	}
	return m, nil
}

func (m *Model) scrollBy(delta int) {
	m.scrollOffset += delta
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxScroll := m.bodyLineCount() - m.bodyHeight()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollOffset > maxScroll {
		m.scrollOffset = maxScroll
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// handleSpinnerTick keeps the spinner running only while work is in flight
func (m Model) handleSpinnerTick(msg spinner.TickMsg) (Model, tea.Cmd) {
	if !m.submitDisabled() {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}
