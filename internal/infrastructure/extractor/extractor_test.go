package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kirillkom/docsight/internal/core/domain"
)

type ocrFake struct {
	text     string
	err      error
	filename string
	payload  []byte
}

func (f *ocrFake) Recognize(_ context.Context, filename string, image []byte) (string, error) {
	f.filename = filename
	f.payload = image
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestExtractTextExtensionsAreIdentityDecode(t *testing.T) {
	e := New(&ocrFake{})

	payload := "Invoice total: $1,250.00\nsecond line\t tabbed"
	for _, name := range []string{"a.txt", "a.text", "a.md", "a.markdown", "a.csv"} {
		got, err := e.Extract(context.Background(), name, []byte(payload))
		if err != nil {
			t.Fatalf("Extract(%s) error = %v", name, err)
		}
		if got != payload {
			t.Fatalf("Extract(%s) = %q, want identity decode %q", name, got, payload)
		}
	}
}

func TestExtractEmptyTextPayload(t *testing.T) {
	e := New(&ocrFake{})

	got, err := e.Extract(context.Background(), "empty.txt", nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "" {
		t.Fatalf("Extract() = %q, want empty string", got)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := New(&ocrFake{})

	_, err := e.Extract(context.Background(), "binary.exe", []byte{0x4d, 0x5a})
	if !domain.IsKind(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}

	var unsupported *domain.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %T", err)
	}
	if unsupported.Extension != "exe" {
		t.Fatalf("extension = %q, want %q", unsupported.Extension, "exe")
	}
}

func TestExtractMissingExtension(t *testing.T) {
	e := New(&ocrFake{})

	_, err := e.Extract(context.Background(), "README", []byte("plain"))
	if !domain.IsKind(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractImageDelegatesToOCR(t *testing.T) {
	ocr := &ocrFake{text: "scanned text"}
	e := New(ocr)

	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	got, err := e.Extract(context.Background(), "scan.PNG", payload)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "scanned text" {
		t.Fatalf("Extract() = %q, want OCR output", got)
	}
	if ocr.filename != "scan.PNG" || string(ocr.payload) != string(payload) {
		t.Fatalf("OCR received filename=%q payload=%v", ocr.filename, ocr.payload)
	}
}

func TestExtractImageOCRFailure(t *testing.T) {
	e := New(&ocrFake{err: errors.New("backend unavailable")})

	_, err := e.Extract(context.Background(), "scan.jpg", []byte{0xff})
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestExtractPDFFallsBackToPlaceholder(t *testing.T) {
	e := New(&ocrFake{})

	data := []byte("not really a pdf, just 30 bytes")
	got, err := e.Extract(context.Background(), "broken.pdf", data)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "broken.pdf") {
		t.Fatalf("placeholder = %q, want filename mention", got)
	}
	if !strings.Contains(got, "0 KB") {
		t.Fatalf("placeholder = %q, want byte-size mention", got)
	}

	again, err := e.Extract(context.Background(), "broken.pdf", data)
	if err != nil || again != got {
		t.Fatalf("placeholder not deterministic: %q vs %q (err=%v)", got, again, err)
	}
}

func TestExtractLegacyDocUsesPlaceholder(t *testing.T) {
	e := New(&ocrFake{})

	got, err := e.Extract(context.Background(), "old.doc", make([]byte, 2048))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "DOC") || !strings.Contains(got, "old.doc") {
		t.Fatalf("placeholder = %q, want DOC placeholder", got)
	}
	if !strings.Contains(got, "2 KB") {
		t.Fatalf("placeholder = %q, want 2 KB", got)
	}
}

func TestExtractCorruptDocxFallsBackToPlaceholder(t *testing.T) {
	e := New(&ocrFake{})

	got, err := e.Extract(context.Background(), "corrupt.docx", []byte("zip? no"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "DOCX") || !strings.Contains(got, "corrupt.docx") {
		t.Fatalf("placeholder = %q, want DOCX placeholder", got)
	}
}

func TestExtractCorruptWorkbookFallsBackToPlaceholder(t *testing.T) {
	e := New(&ocrFake{})

	got, err := e.Extract(context.Background(), "broken.xlsx", []byte("not a workbook"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "XLSX") || !strings.Contains(got, "broken.xlsx") {
		t.Fatalf("placeholder = %q, want XLSX placeholder", got)
	}
}
