// Package analyze turns page-segmented document text into structured
// sections. Three independent strategies (headers, paragraphs, lists) emit
// candidates that a resolver dedupes by title, assigns stable ids, and
// scores for confidence. All of it is deterministic: identical pages always
// produce identical sections.
package analyze

import (
	"strings"
	"time"

	"github.com/docsiftio/docsift/internal/extract"
)

// Analyzer runs structure detection over extracted pages.
type Analyzer struct {
	cfg Config
	now func() time.Time
}

// New returns an Analyzer using the given heuristic configuration.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg, now: time.Now}
}

// Analyze builds the structural analysis of one document. filename is the
// base file name used in metadata and section ids; pages must be in reading
// order.
func (a *Analyzer) Analyze(filename string, pages []extract.Page) Analysis {
	var full strings.Builder
	pageTexts := make([]PageText, 0, len(pages))
	for _, p := range pages {
		full.WriteString(p.Text)
		full.WriteString("\n")
		pageTexts = append(pageTexts, PageText{
			PageNumber: p.PageNumber,
			Text:       strings.TrimSpace(p.Text),
			CharCount:  p.CharCount,
		})
	}
	fullText := full.String()
	sections := a.detectSections(filename, pageTexts)

	return Analysis{
		Metadata: Metadata{
			Filename:            filename,
			TotalPages:          len(pageTexts),
			TotalCharacters:     len(fullText),
			TotalSections:       len(sections),
			ProcessingTimestamp: a.now().Format(time.RFC3339),
		},
		FullText: fullText,
		Pages:    pageTexts,
		Sections: sections,
	}
}

// detectSections applies the strategies in fixed order and resolves the
// combined candidate list. The order matters: resolution keeps the first
// occurrence of a title, so header candidates outrank paragraph candidates,
// which outrank list candidates.
func (a *Analyzer) detectSections(filename string, pages []PageText) []Section {
	var candidates []candidate
	candidates = append(candidates, detectHeaders(a.cfg, pages)...)
	candidates = append(candidates, detectParagraphs(a.cfg, pages)...)
	candidates = append(candidates, detectLists(a.cfg, pages)...)
	return resolve(a.cfg, filename, candidates)
}

// Failed returns the degraded analysis recorded when extraction could not
// produce pages for a document. Sibling documents are unaffected by it.
func Failed(filename string, err error) Analysis {
	return Analysis{
		Metadata: Metadata{Filename: filename, Error: err.Error()},
		Pages:    []PageText{},
		Sections: []Section{},
	}
}
