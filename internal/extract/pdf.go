package extract

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// FromPDF extracts one Page per physical PDF page. Pages whose text cannot be
// decoded are included with empty text so page numbering stays aligned with
// the document.
func FromPDF(path string) ([]Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{PageNumber: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, Page{PageNumber: i})
			continue
		}
		pages = append(pages, Page{PageNumber: i, Text: text, CharCount: len(text)})
	}
	return pages, nil
}
