package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF tries a real text-layer parse first. Anything that goes
// wrong falls back to the placeholder; this path never fails.
func extractPDF(filename string, data []byte) string {
	text, err := parsePDF(data)
	if err != nil || text == "" {
		return placeholderText("PDF", filename, len(data))
	}
	return text
}

func parsePDF(data []byte) (text string, err error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}
