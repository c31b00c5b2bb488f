// Package extractor decodes statement PDFs into plain text. It is the
// collaborator in front of the parsing core: every precondition failure
// (empty file, wrong signature, encryption, unreadable content) is
// detected here, before any text reaches issuer detection.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Precondition failures, surfaced as distinct errors so callers can give
// the user an actionable message for each case.
var (
	ErrEmptyFile        = errors.New("document is empty")
	ErrNotPDF           = errors.New("not a PDF document")
	ErrPasswordRequired = errors.New("PDF is password protected; a password is required")
	ErrWrongPassword    = errors.New("PDF password is incorrect")
	ErrNoText           = errors.New("no readable text could be extracted; the PDF may be image-based or scanned")
)

// Document is the decoded text of one statement PDF.
type Document struct {
	Text      string
	PageCount int
}

// ExtractFile reads and decodes a statement PDF from disk.
func ExtractFile(path, password string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Extract(data, password)
}

// Extract decodes a statement PDF from memory. The password is only
// consulted when the document is encrypted.
func Extract(data []byte, password string) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, ErrNotPDF
	}

	reader, err := openReader(data, password)
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, ErrNoText
	}

	pages := extractByRow(reader, numPages)
	if !isReadableText(pages) {
		pages = extractPlainText(reader, numPages)
	}
	if !isReadableText(pages) {
		return nil, ErrNoText
	}

	return &Document{
		Text:      strings.Join(pages, "\n"),
		PageCount: numPages,
	}, nil
}

// openReader opens the PDF, distinguishing "password required" from
// "password incorrect" so the caller can prompt appropriately.
func openReader(data []byte, password string) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	r := bytes.NewReader(data)
	size := int64(len(data))

	if password == "" {
		reader, err = pdf.NewReader(r, size)
		if err != nil && isPasswordErr(err) {
			return nil, ErrPasswordRequired
		}
		return reader, err
	}

	// The library re-invokes the callback until it gets the right
	// password or an empty string; hand the password over exactly once.
	used := false
	reader, err = pdf.NewReaderEncrypted(r, size, func() string {
		if used {
			return ""
		}
		used = true
		return password
	})
	if err != nil && isPasswordErr(err) {
		return nil, ErrWrongPassword
	}
	return reader, err
}

func isPasswordErr(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "password") ||
		strings.Contains(strings.ToLower(err.Error()), "encrypt")
}

// extractByRow reconstructs each page line by line, which preserves the
// label/value adjacency the field patterns depend on.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractPlainText is the fallback path using the page-level plain text
// API with a per-page font map.
func extractPlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}
