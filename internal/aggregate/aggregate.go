package aggregate

import (
	"sort"
	"time"

	"github.com/docsiftio/docsift/internal/brief"
	"github.com/docsiftio/docsift/internal/persona"
)

// refinedTextLimit trims subsection text for preview.
const refinedTextLimit = 300

// DocumentResult pairs one requested document with its persona-scored
// analysis. A document whose extraction failed carries a degraded analysis
// with no sections and a non-empty Error; it still appears in the batch
// metadata.
type DocumentResult struct {
	Filename string
	Analysis persona.Analysis
	Error    string
}

// Metadata describes one batch run.
type Metadata struct {
	InputDocuments      []string      `json:"input_documents"`
	Persona             brief.Persona `json:"persona"`
	JobToBeDone         brief.Job     `json:"job_to_be_done"`
	ProcessingTimestamp string        `json:"processing_timestamp"`
}

// RankedSection is one entry of the cross-document ranking.
type RankedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// Subsection carries the refined text for one ranked section.
type Subsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Output is the persisted result of one batch run.
type Output struct {
	Metadata           Metadata        `json:"metadata"`
	ExtractedSections  []RankedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection    `json:"subsection_analysis"`
}

// Build merges per-document results, given in input order, into the output
// payload. Sections from all documents compete in one ranking ordered by
// descending persona relevance; ties keep input order (document order, then
// section order within a document). maxSections caps the ranking when
// positive; zero means unlimited.
func Build(results []DocumentResult, who brief.Persona, job brief.Job, ts time.Time, maxSections int) Output {
	documents := make([]string, 0, len(results))
	type placed struct {
		document string
		section  persona.Section
	}
	all := make([]placed, 0, 64)

	for _, r := range results {
		documents = append(documents, r.Filename)
		for _, s := range r.Analysis.Sections {
			all = append(all, placed{document: r.Filename, section: s})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].section.PersonaRelevanceScore > all[j].section.PersonaRelevanceScore
	})
	if maxSections > 0 && len(all) > maxSections {
		all = all[:maxSections]
	}

	ranked := make([]RankedSection, 0, len(all))
	subsections := make([]Subsection, 0, len(all))
	for i, p := range all {
		ranked = append(ranked, RankedSection{
			Document:       p.document,
			SectionTitle:   p.section.SectionTitle,
			ImportanceRank: i + 1,
			PageNumber:     p.section.PageNumber,
		})
		subsections = append(subsections, Subsection{
			Document:    p.document,
			RefinedText: refine(p.section.Content),
			PageNumber:  p.section.PageNumber,
		})
	}

	return Output{
		Metadata: Metadata{
			InputDocuments:      documents,
			Persona:             who,
			JobToBeDone:         job,
			ProcessingTimestamp: ts.Format(time.RFC3339),
		},
		ExtractedSections:  ranked,
		SubsectionAnalysis: subsections,
	}
}

func refine(content string) string {
	if len(content) > refinedTextLimit {
		return content[:refinedTextLimit]
	}
	return content
}
