package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts the plain text of a PDF document and cleans it. Pages that
// cannot be decoded are skipped rather than failing the whole document.
func FromPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	if strings.TrimSpace(builder.String()) == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return CleanText(builder.String()), nil
}
