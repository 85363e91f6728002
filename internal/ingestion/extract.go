// Package ingestion turns uploaded résumé documents into cleaned plain text.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-critiquer/internal/types"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText converts a résumé document into text.
// PDF pages are joined with newlines; a page without extractable text yields an empty line.
func ExtractText(doc types.ResumeDocument) (string, error) {
	var (
		text string
		err  error
	)

	switch doc.MediaType {
	case types.MediaTypePDF:
		text, err = extractPDF(doc.Data)
	case types.MediaTypePlainText:
		text, err = decodePlainText(doc.Data)
	case types.MediaTypeDOCX:
		text, err = extractDOCX(doc.Data)
	default:
		return "", &ExtractionError{
			MediaType: string(doc.MediaType),
			Message:   "unsupported media type",
		}
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

// RequireContent returns text unchanged, or a ContentError when it has no
// non-whitespace characters. Call it before spending any AI request on text.
func RequireContent(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &ContentError{Message: "document has no readable text"}
	}
	return text, nil
}

// DetectMediaType resolves the media type of an upload from its declared
// MIME type, falling back to the file extension.
func DetectMediaType(filename, declared string) types.MediaType {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}

	switch types.MediaType(declared) {
	case types.MediaTypePDF, types.MediaTypePlainText, types.MediaTypeDOCX:
		return types.MediaType(declared)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return types.MediaTypePDF
	case ".docx":
		return types.MediaTypeDOCX
	case ".txt", ".md", ".text":
		return types.MediaTypePlainText
	}

	return types.MediaType(declared)
}

// LoadFile reads a résumé from disk and detects its media type from the extension.
func LoadFile(path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ResumeDocument{}, fmt.Errorf("file not found: %w", err)
		}
		return types.ResumeDocument{}, fmt.Errorf("failed to read file: %w", err)
	}

	name := filepath.Base(path)
	return types.ResumeDocument{
		Filename:  name,
		MediaType: DetectMediaType(name, ""),
		Data:      data,
	}, nil
}

// extractPDF returns the text of every page. The pdf package panics on
// corrupted objects and xref tables; those surface as *ExtractionError.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{MediaType: string(types.MediaTypePDF), Message: "malformed pdf", Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MediaType: string(types.MediaTypePDF), Message: "failed to read pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		sb.WriteString(pageText(reader.Page(i)))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// pageText returns the plain text of one page, or "" if the page has none.
// The pdf package panics on some malformed content streams.
func pageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func decodePlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &ExtractionError{MediaType: string(types.MediaTypePlainText), Message: "text is not valid UTF-8"}
	}
	return string(data), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MediaType: string(types.MediaTypeDOCX), Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	// Paragraph ends become line breaks before the markup is dropped.
	content := strings.ReplaceAll(doc.Editable().GetContent(), "</w:p>", "</w:p>\n")
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &ExtractionError{MediaType: string(types.MediaTypeDOCX), Message: "failed to read document body", Cause: err}
	}
	return parsed.Text(), nil
}
