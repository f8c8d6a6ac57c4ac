package utils

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RoundedKilobytes converts a byte count to whole kilobytes, rounding half up.
func RoundedKilobytes(size int64) int64 {
	if size <= 0 {
		return 0
	}
	return int64(math.Round(float64(size) / 1024))
}

func ValidateFile(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		return fmt.Errorf("cannot access file %s: %w", filename, err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filename)
	}

	return nil
}

func EnsureDirectory(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("invalid directory path: %w", err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", absPath, err)
	}

	return nil
}

func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%d ms", duration.Milliseconds())
	}

	if duration < time.Minute {
		return fmt.Sprintf("%.1f sec", duration.Seconds())
	}

	if duration < time.Hour {
		return fmt.Sprintf("%.1f min", duration.Minutes())
	}

	return fmt.Sprintf("%.1f hrs", duration.Hours())
}

func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(size)/float64(div), units[exp])
}

func TruncateString(s string, maxLength int) string {
	r := []rune(s)
	if len(r) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return string(r[:maxLength])
	}

	return string(r[:maxLength-3]) + "..."
}

// WrapText wraps each paragraph of text at word boundaries. Blank lines are
// kept so paragraph breaks survive.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}

		var currentLine strings.Builder
		currentLen := 0
		for _, word := range strings.Fields(paragraph) {
			wordLen := len([]rune(word))
			// If adding this word would exceed the width, start a new line
			if currentLen > 0 && currentLen+wordLen+1 > width {
				lines = append(lines, currentLine.String())
				currentLine.Reset()
				currentLen = 0
			}

			if currentLen > 0 {
				currentLine.WriteString(" ")
				currentLen++
			}
			currentLine.WriteString(word)
			currentLen += wordLen
		}

		if currentLen > 0 {
			lines = append(lines, currentLine.String())
		}
	}

	return lines
}
