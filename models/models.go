package models

// PDFMimeType is the only MIME type the upload control accepts.
const PDFMimeType = "application/pdf"

// SelectedFile describes a file chosen through the upload control
type SelectedFile struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	MIMEType  string `json:"mime_type"`
}

// IsPDF reports whether the file was offered as a PDF
func (f SelectedFile) IsPDF() bool {
	return f.MIMEType == PDFMimeType
}

// AnalysisRequest is the body posted to the analysis service
type AnalysisRequest struct {
	JudgmentText string `json:"judgment_text"`
}

// AnalysisResponse is the appealability analysis returned for a judgment
type AnalysisResponse struct {
	JudgmentSummary string `json:"judgment_summary"`
	Analysis        string `json:"analysis"`
}
