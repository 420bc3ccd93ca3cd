// Package extractor converts raw files into plain text, dispatching on the
// declared file extension. Text formats decode verbatim, binary document
// formats attempt a real parse and degrade to a deterministic placeholder,
// images go through the OCR backend. Unrecognized extensions are rejected
// with a typed error; the pipeline never sees a partial result.
package extractor

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/kirillkom/docsight/internal/core/domain"
	"github.com/kirillkom/docsight/internal/core/ports"
)

type Extractor struct {
	ocr ports.OCREngine
}

func New(ocr ports.OCREngine) *Extractor {
	return &Extractor{ocr: ocr}
}

var imageExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "bmp": {}, "gif": {}, "tiff": {}, "webp": {},
}

var textExtensions = map[string]struct{}{
	"txt": {}, "text": {}, "md": {}, "markdown": {}, "csv": {},
}

// Extract dispatches on the filename extension. Text-literal extensions
// are the identity decode of the payload; pdf/doc/docx/xlsx never fail.
// Only the OCR path can return an extraction I/O error.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	if _, ok := textExtensions[ext]; ok {
		return string(data), nil
	}
	if _, ok := imageExtensions[ext]; ok {
		text, err := e.ocr.Recognize(ctx, filename, data)
		if err != nil {
			return "", domain.WrapError(domain.ErrExtraction, "ocr recognize", err)
		}
		return text, nil
	}

	switch ext {
	case "pdf":
		return extractPDF(filename, data), nil
	case "doc", "docx":
		return extractWord(ext, filename, data), nil
	case "xlsx":
		return extractWorkbook(filename, data), nil
	}

	return "", &domain.UnsupportedFormatError{Extension: ext}
}

// placeholderText is the deterministic fallback for binary document
// formats no parser could handle. It names the file and its size so the
// downstream stages still get stable, non-empty input.
func placeholderText(format, filename string, size int) string {
	kb := int(math.Round(float64(size) / 1024))
	return fmt.Sprintf(
		"Extracted text from %s: %s\n\nThis %s appears to contain %d KB of data. The content might require specialized parsing.",
		format, filename, format, kb,
	)
}
