// Package ingestion loads candidate documents from files and normalizes them
// to plain text. Plain text, HTML, and PDF inputs are supported; everything
// downstream operates on the cleaned text only.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var multiSpacePattern = regexp.MustCompile(`\s+`)
var excessiveBlankLinesPattern = regexp.MustCompile(`\n\n\n+`)

// FromFile reads a document and returns its cleaned plain text. The format is
// chosen by file extension: .html/.htm and .pdf get format-specific
// extraction, everything else is treated as plain text.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FromHTML(string(content))
	case ".pdf":
		return FromPDF(content)
	default:
		return CleanText(string(content)), nil
	}
}

// CleanText normalizes document text while preserving line structure. Section
// detection and line counting depend on lines surviving cleanup, so only
// whitespace is normalized, never removed lines (beyond collapsing runs of
// blank lines).
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLinesPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line, preserving bullet markers and indentation
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	content := multiSpacePattern.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}
