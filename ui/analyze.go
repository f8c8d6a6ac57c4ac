package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"judgment-analyzer/analyzer"
	"judgment-analyzer/extract"
	"judgment-analyzer/models"
	"judgment-analyzer/utils"
)

// Request is one headless analysis: either a file to extract or text.
// File wins when both are set.
type Request struct {
	File string
	Text string
}

// UserError carries the message shown to the user alongside its cause.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// RunAnalysis performs the form's workflow without a terminal UI and writes
// the result to w. Failures are only reported through the returned
// *UserError; the caller prints its message.
func RunAnalysis(ctx context.Context, w io.Writer, a analyzer.Analyzer, req Request) (*models.AnalysisResponse, error) {
	PrintBanner(w)

	text := req.Text
	if req.File != "" {
		extracted, err := extractFile(w, req.File)
		if err != nil {
			return nil, err
		}
		text = extracted
	}

	if strings.TrimSpace(text) == "" {
		return nil, &UserError{Message: models.MsgEmptyInput}
	}

	PrintSectionHeader(w, "Analyzing Appealability")
	fmt.Fprintf(w, "  %s %s\n", ColorInfo("Judgment text:"), ColorHighlight(fmt.Sprintf("%d characters", len([]rune(text)))))

	start := time.Now()
	resp, err := a.Analyze(ctx, text)
	if err == nil && resp == nil {
		err = errors.New("empty analysis response")
	}
	if err != nil {
		slog.Error("Analysis request failed.", "error", err)
		PrintSectionFooter(w)
		return nil, &UserError{Message: models.MsgAnalysisFailure, Err: err}
	}
	fmt.Fprintln(w, "  "+ColorSuccess("Analysis complete in "+utils.FormatDuration(time.Since(start))))
	PrintSectionFooter(w)
	fmt.Fprintln(w)

	PrintSectionHeader(w, "Summary")
	PrintParagraphs(w, utils.WrapText(resp.JudgmentSummary, sectionWidth-2))
	PrintSectionFooter(w)
	fmt.Fprintln(w)

	PrintSectionHeader(w, "Analysis")
	PrintParagraphs(w, utils.WrapText(resp.Analysis, sectionWidth-2))
	PrintSectionFooter(w)

	return resp, nil
}

const maxNameWidth = 40

func extractFile(w io.Writer, path string) (string, error) {
	file, err := extract.Inspect(path)
	if err != nil {
		slog.Warn("Could not inspect selected file.", "path", path, "error", err)
		file = models.SelectedFile{Name: filepath.Base(path), Path: path, MIMEType: extract.DetectMIMEType(path)}
	}

	if !file.IsPDF() {
		return "", &UserError{Message: models.MsgInvalidFileType, Err: extract.ErrNotPDF}
	}

	PrintSectionHeader(w, "Upload Document")
	fmt.Fprintf(w, "  %s %s (%s)\n", ColorInfo(models.StatusProcessing), ColorHighlight(utils.TruncateString(file.Name, maxNameWidth)), utils.FormatFileSize(file.SizeBytes))

	text, err := extract.Extract(file)
	if err != nil {
		slog.Warn("Reading selected file failed.", "name", file.Name, "error", err)
		PrintSectionFooter(w)
		return "", &UserError{Message: models.MsgFileReadFailure, Err: err}
	}

	fmt.Fprintln(w, "  "+ColorSuccess(models.StatusProcessed))
	PrintSectionFooter(w)
	fmt.Fprintln(w)
	return text, nil
}
