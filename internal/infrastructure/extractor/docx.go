package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type wordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	Text string `xml:"t"`
}

// extractWord handles doc and docx. docx gets a real zip/XML parse;
// legacy doc has no parser here, so it goes straight to the placeholder.
// This path never fails.
func extractWord(ext, filename string, data []byte) string {
	if ext == "docx" {
		if text, err := parseDOCX(data); err == nil && text != "" {
			return text
		}
	}
	return placeholderText(strings.ToUpper(ext), filename, len(data))
}

func parseDOCX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx container: %w", err)
	}

	var documentFile *zip.File
	for _, file := range zipReader.File {
		if file.Name == "word/document.xml" {
			documentFile = file
			break
		}
	}
	if documentFile == nil {
		return "", fmt.Errorf("document.xml not found in docx")
	}

	xmlFile, err := documentFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer xmlFile.Close()

	xmlData, err := io.ReadAll(xmlFile)
	if err != nil {
		return "", fmt.Errorf("read document.xml: %w", err)
	}

	var doc wordDocument
	if err := xml.Unmarshal(xmlData, &doc); err != nil {
		return "", fmt.Errorf("parse document.xml: %w", err)
	}

	var b strings.Builder
	for _, paragraph := range doc.Body.Paragraphs {
		for _, run := range paragraph.Runs {
			b.WriteString(run.Text)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}
