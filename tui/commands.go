package tui

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"judgment-analyzer/analyzer"
	"judgment-analyzer/extract"
	"judgment-analyzer/models"

	tea "github.com/charmbracelet/bubbletea"
)

// fileChosenMsg is sent when a path is picked outside the file picker.
type fileChosenMsg struct {
	Path string
}

// ExtractionResult reports the outcome of a simulated extraction
type ExtractionResult struct {
	File  models.SelectedFile
	Text  string
	Error error
}

// AnalysisResult reports the outcome of a submission
type AnalysisResult struct {
	Response *models.AnalysisResponse
	Error    error
}

func selectPathCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return fileChosenMsg{Path: path}
	}
}

// extractFileCmd reads the file off the event loop.
func extractFileCmd(file models.SelectedFile) tea.Cmd {
	return func() tea.Msg {
		text, err := extract.Extract(file)
		return ExtractionResult{File: file, Text: text, Error: err}
	}
}

// analyzeCmd issues the single analysis request for text.
func analyzeCmd(ctx context.Context, a analyzer.Analyzer, text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.Analyze(ctx, text)
		return AnalysisResult{Response: resp, Error: err}
	}
}

// selectedFileFromPath describes path for selectFile. A file that cannot be
// inspected is still offered so the read step reports the failure.
func selectedFileFromPath(path string) models.SelectedFile {
	file, err := extract.Inspect(path)
	if err != nil {
		slog.Warn("Could not inspect selected file.", "path", path, "error", err)
		return models.SelectedFile{
			Name:     filepath.Base(path),
			Path:     path,
			MIMEType: extract.DetectMIMEType(path),
		}
	}
	return file
}

// selectFile starts the simulated extraction for file. Files not offered as
// PDFs only set the error; nothing else changes.
func (m Model) selectFile(file models.SelectedFile) (Model, tea.Cmd) {
	if !file.IsPDF() {
		m.errorMessage = models.MsgInvalidFileType
		return m, nil
	}

	m.errorMessage = ""
	m.isExtracting = true
	m.uploadStatus = models.StatusProcessing
	slog.Info("Extracting selected file.", "name", file.Name, "size", file.SizeBytes)

	return m, tea.Batch(extractFileCmd(file), m.spinner.Tick)
}

// handleExtractionResult applies a finished extraction. Overlapping
// extractions are not cancelled; whichever finishes last wins.
func (m Model) handleExtractionResult(msg ExtractionResult) (Model, tea.Cmd) {
	m.isExtracting = false

	if msg.Error != nil {
		slog.Warn("Reading selected file failed.", "name", msg.File.Name, "error", msg.Error)
		m.errorMessage = models.MsgFileReadFailure
		m.uploadStatus = ""
		return m, nil
	}

	m.judgmentText = msg.Text
	m.input.SetValue(msg.Text)
	m.uploadStatus = models.StatusProcessed
	return m, nil
}

// submit sends the judgment text for analysis unless the Analyze control is
// disabled or there is nothing to send.
func (m Model) submit() (Model, tea.Cmd) {
	if m.submitDisabled() {
		return m, nil
	}

	if strings.TrimSpace(m.judgmentText) == "" {
		m.errorMessage = models.MsgEmptyInput
		return m, nil
	}

	m.isAnalyzing = true
	m.errorMessage = ""
	m.result = nil
	m.scrollOffset = 0

	return m, tea.Batch(analyzeCmd(m.ctx, m.analyzer, m.judgmentText), m.spinner.Tick)
}

// handleAnalysisResult applies a finished submission. isAnalyzing is
// cleared on every outcome.
func (m Model) handleAnalysisResult(msg AnalysisResult) (Model, tea.Cmd) {
	m.isAnalyzing = false

	if msg.Error != nil || msg.Response == nil {
		slog.Error("Analysis request failed.", "error", msg.Error)
		m.errorMessage = models.MsgAnalysisFailure
		return m, nil
	}

	m.result = msg.Response
	return m, nil
}
