package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// openPicker shows the file picker in place of the form
func (m Model) openPicker() (Model, tea.Cmd) {
	m.picking = true
	m.input.Blur()
	return m, m.picker.Init()
}

// closePicker returns to the form with focus restored
func (m Model) closePicker() (Model, tea.Cmd) {
	m.picking = false
	if m.focus == FocusText {
		return m, m.input.Focus()
	}
	return m, nil
}

// updatePicker routes keys to the file picker while it is open. Picking a
// file the picker marks as disabled still goes through selectFile, which
// rejects it.
func (m Model) updatePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m.closePicker()
	}

	var pickerCmd tea.Cmd
	m.picker, pickerCmd = m.picker.Update(msg)

	path := ""
	if ok, p := m.picker.DidSelectFile(msg); ok {
		path = p
	} else if ok, p := m.picker.DidSelectDisabledFile(msg); ok {
		path = p
	}
	if path == "" {
		return m, pickerCmd
	}

	m, focusCmd := m.closePicker()
	m, selectCmd := m.selectFile(selectedFileFromPath(path))
	return m, tea.Batch(pickerCmd, focusCmd, selectCmd)
}

func (m Model) viewPicker() string {
	var s strings.Builder

	s.WriteString(labelStyle.Render("Upload Document") + "\n")
	s.WriteString(helpStyle.Render(m.picker.CurrentDirectory) + "\n\n")
	s.WriteString(m.picker.View() + "\n")
	s.WriteString(helpStyle.Render("↑/↓ to navigate, Enter to select, ←/Backspace to go up, Esc to cancel"))

	return s.String()
}
