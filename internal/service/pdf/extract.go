package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document processing limits.
const (
	MaxFileSize  = 10 * 1024 * 1024
	MaxPages     = 50
	MinWordCount = 100
)

// Document holds the extracted text of an uploaded PDF plus the
// metadata shown to the user.
type Document struct {
	Text      string
	PageCount int
	WordCount int
	Warning   string
}

// Validate rejects a file before any parsing happens. Error messages
// are user-facing.
func Validate(filename string, size int64) error {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return errors.New("Invalid file type. Please upload a PDF file.")
	}
	if size > MaxFileSize {
		return fmt.Errorf("File size exceeds %dMB limit.", MaxFileSize/(1024*1024))
	}
	return nil
}

// Extract pulls plain text out of PDF bytes, reading at most MaxPages
// pages. Returned errors carry user-facing messages; see Validate for
// the pre-checks callers are expected to run first.
func Extract(data []byte) (doc *Document, err error) {
	// The underlying reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("Failed to extract text from PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, errors.New("PDF is password-protected. Please unlock the file and try again.")
		}
		return nil, fmt.Errorf("Failed to extract text from PDF: %v", err)
	}

	pageCount := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pageCount && i <= MaxPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return buildDocument(b.String(), pageCount)
}

// buildDocument applies the content checks shared by all extraction
// paths: non-empty text, minimum word count, page-cap warning.
func buildDocument(text string, pageCount int) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("No text found in PDF. This may be a scanned document or image-only PDF. OCR is not currently supported.")
	}
	wordCount := len(strings.Fields(text))
	if wordCount < MinWordCount {
		return nil, fmt.Errorf("Insufficient content. PDF must contain at least %d words. Found %d words.", MinWordCount, wordCount)
	}
	doc := &Document{Text: text, PageCount: pageCount, WordCount: wordCount}
	if pageCount > MaxPages {
		doc.Warning = fmt.Sprintf("Processing first %d pages only.", MaxPages)
	}
	return doc, nil
}
