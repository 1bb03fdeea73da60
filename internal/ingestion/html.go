package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FromHTML extracts the visible text of an HTML document and cleans it.
// Script, style, and other non-content elements are dropped; block elements
// become separate lines so section headers stay detectable.
func FromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe, svg").Remove()

	var builder strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, section, article, header").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes: containers repeat their children's text
		if s.Children().Filter("div, section, article, p, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			builder.WriteString(text)
			builder.WriteString("\n")
		}
	})

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		// No block structure found, fall back to the whole document text
		text = doc.Text()
	}
	return CleanText(text), nil
}
