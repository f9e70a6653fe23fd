package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Page is one physical page of extracted document text. Text holds the raw
// extraction output for the page; CharCount is its length at extraction time.
type Page struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
	CharCount  int    `json:"char_count"`
}

// ForFile extracts the ordered pages of the document at path, choosing a
// strategy by file extension. PDF and HTML have dedicated extractors; any
// other extension is read as plain text.
func ForFile(path string) ([]Page, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FromPDF(path)
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return FromHTML(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return FromText(string(data)), nil
	}
}

// FromText splits raw text into pages on form-feed boundaries. Input without
// a form feed becomes a single page.
func FromText(raw string) []Page {
	parts := strings.Split(raw, "\f")
	pages := make([]Page, 0, len(parts))
	for i, part := range parts {
		pages = append(pages, Page{PageNumber: i + 1, Text: part, CharCount: len(part)})
	}
	return pages
}
