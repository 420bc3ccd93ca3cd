package extractor

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

// extractWorkbook flattens an xlsx workbook into text: cells join with
// spaces, rows with newlines, sheets with a blank line. Falls back to the
// placeholder when the file cannot be opened or carries no cell values.
func extractWorkbook(filename string, data []byte) string {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return placeholderText("XLSX", filename, len(data))
	}
	defer f.Close()

	var b strings.Builder
	for i, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line != "" {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return placeholderText("XLSX", filename, len(data))
	}
	return text
}
