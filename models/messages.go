package models

// User-facing messages shared by the form and the headless command.
const (
	MsgInvalidFileType = "Please upload a PDF file"
	MsgFileReadFailure = "Error reading the file. Please try again."
	MsgEmptyInput      = "Please enter a judgment text or upload a PDF."
	MsgAnalysisFailure = "Error occurred while analyzing appealability."

	StatusProcessing = "Processing file..."
	StatusProcessed  = "File processed. Please review or edit the extracted text."
)
