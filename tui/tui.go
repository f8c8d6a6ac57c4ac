package tui

import (
	"context"
	"fmt"

	"judgment-analyzer/analyzer"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the analyzer form and blocks until the user quits
func Run(ctx context.Context, a analyzer.Analyzer, opts Options) error {
	m := NewModel(ctx, a, opts)

	// Alt screen and mouse support keep the form isolated from the shell
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
