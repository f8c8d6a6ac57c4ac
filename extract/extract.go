// Package extract turns an uploaded file into judgment text.
//
// Extraction is simulated: the file's bytes are read as text to prove the
// file is readable, then discarded in favour of a fixed placeholder message
// naming the file and its size. Real PDF parsing needs a document-parsing
// collaborator this module does not ship.
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"judgment-analyzer/models"
	"judgment-analyzer/utils"
)

var (
	// ErrNotPDF is returned when a file was not offered as application/pdf.
	ErrNotPDF = errors.New("file is not a PDF")
	// ErrRead wraps any I/O failure while reading the selected file.
	ErrRead = errors.New("read file")
)

// fallbackTypes covers systems whose mime tables lack common document types.
var fallbackTypes = map[string]string{
	".pdf":  models.PDFMimeType,
	".txt":  "text/plain",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

const readBufferSize = 64 * 1024

// DetectMIMEType reports the MIME type a file picker would advertise for
// name. Only the extension is consulted; file contents are never sniffed.
func DetectMIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if t, ok := fallbackTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if mediaType, _, err := mime.ParseMediaType(t); err == nil {
		return mediaType
	}
	return t
}

// Inspect describes the file at path without reading its contents.
func Inspect(path string) (models.SelectedFile, error) {
	if err := utils.ValidateFile(path); err != nil {
		return models.SelectedFile{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return models.SelectedFile{
		Name:      info.Name(),
		Path:      path,
		SizeBytes: info.Size(),
		MIMEType:  DetectMIMEType(info.Name()),
	}, nil
}

// ReadRaw reads the whole file and decodes it as text. Invalid UTF-8 is
// replaced, so binary PDF content still yields a string.
func ReadRaw(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}
	defer file.Close()

	var sb strings.Builder
	reader := bufio.NewReaderSize(file, readBufferSize)
	if _, err := io.Copy(&sb, reader); err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}

	return strings.ToValidUTF8(sb.String(), "�"), nil
}

// SyntheticText is the placeholder judgment text shown after an upload.
func SyntheticText(name string, sizeBytes int64) string {
	return fmt.Sprintf("[Content extracted from %s (%dKB)]\n\n", name, utils.RoundedKilobytes(sizeBytes)) +
		"This is simulated text content from your PDF document. In a production environment, " +
		"you would use a proper PDF parsing library to extract the actual text content.\n\n" +
		"For demonstration purposes, you can replace this text with your actual judgment text."
}

// Extract runs the simulated extraction for file. Files not offered as PDFs
// are rejected before anything is read.
func Extract(file models.SelectedFile) (string, error) {
	if !file.IsPDF() {
		return "", fmt.Errorf("%w: %s has type %q", ErrNotPDF, file.Name, file.MIMEType)
	}

	// The decoded contents are only read to surface I/O failures.
	if _, err := ReadRaw(file.Path); err != nil {
		return "", err
	}

	return SyntheticText(file.Name, file.SizeBytes), nil
}
