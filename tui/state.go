package tui

import (
	"context"

	"judgment-analyzer/analyzer"
	"judgment-analyzer/models"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const textPlaceholder = "Paste your judgment text here or upload a PDF file..."

// Focus identifies which form control receives key input
type Focus int

const (
	FocusText Focus = iota
	FocusUpload
	FocusSubmit
)

const focusCount = 3

// Options configures a Model.
type Options struct {
	// StartDir is where the file picker opens.
	StartDir string
	// File, when set, is selected as soon as the program starts.
	File string
}

// Model is the analyzer form. It owns the whole workflow state for one
// program run; nothing is persisted.
type Model struct {
	width  int
	height int

	// Layout
	sidebarWidth int
	mainWidth    int
	scrollOffset int

	// Workflow state
	judgmentText string
	result       *models.AnalysisResponse
	isAnalyzing  bool
	isExtracting bool
	errorMessage string
	uploadStatus string

	// Controls
	focus   Focus
	picking bool
	input   textarea.Model
	picker  filepicker.Model
	spinner spinner.Model

	ctx      context.Context
	analyzer analyzer.Analyzer
	initFile string
}

// NewModel creates the form. Submissions go through a.
func NewModel(ctx context.Context, a analyzer.Analyzer, opts Options) Model {
	input := textarea.New()
	input.Placeholder = textPlaceholder
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetHeight(12)
	input.Focus()

	picker := filepicker.New()
	picker.AllowedTypes = []string{".pdf"}
	picker.AutoHeight = false
	picker.Height = 10
	picker.CurrentDirectory = opts.StartDir
	if picker.CurrentDirectory == "" {
		picker.CurrentDirectory = "."
	}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = uploadStatusStyle

	return Model{
		focus:    FocusText,
		input:    input,
		picker:   picker,
		spinner:  spin,
		ctx:      ctx,
		analyzer: a,
		initFile: opts.File,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.initFile != "" {
		cmds = append(cmds, selectPathCmd(m.initFile))
	}
	return tea.Batch(cmds...)
}

// submitDisabled mirrors the disabled state of the Analyze control.
func (m Model) submitDisabled() bool {
	return m.isAnalyzing || m.isExtracting
}

// JudgmentText returns the current contents of the text surface.
func (m Model) JudgmentText() string {
	return m.judgmentText
}

// Result returns the last successful analysis, or nil.
func (m Model) Result() *models.AnalysisResponse {
	return m.result
}

// ErrorMessage returns the inline error, or "" when none is shown.
func (m Model) ErrorMessage() string {
	return m.errorMessage
}
