package report

import (
	"fmt"
	"strings"

	"github.com/docsiftio/docsift/internal/aggregate"
)

// Markdown renders a readable summary of one batch run: the request, the
// cross-document ranking, and a per-document breakdown. The JSON payload
// remains the machine-readable artifact; this is for humans skimming a run.
func Markdown(out aggregate.Output, results []aggregate.DocumentResult) string {
	var sb strings.Builder
	sb.WriteString("# Document analysis report\n\n")
	sb.WriteString("Persona: " + orUnspecified(out.Metadata.Persona.Role) + "\n")
	sb.WriteString("Job to be done: " + orUnspecified(out.Metadata.JobToBeDone.Task) + "\n")
	sb.WriteString("Processed: " + out.Metadata.ProcessingTimestamp + "\n")

	sb.WriteString("\n## Ranked sections\n\n")
	if len(out.ExtractedSections) == 0 {
		sb.WriteString("No sections were extracted.\n")
	}
	for _, s := range out.ExtractedSections {
		fmt.Fprintf(&sb, "%d. [%s] %s (page %d)\n", s.ImportanceRank, s.Document, s.SectionTitle, s.PageNumber)
	}

	sb.WriteString("\n## Documents\n")
	for _, r := range results {
		sb.WriteString("\n### " + r.Filename + "\n\n")
		if r.Error != "" {
			sb.WriteString("Extraction failed: " + r.Error + "\n")
			continue
		}
		m := r.Analysis.Metadata
		fmt.Fprintf(&sb, "- Persona type: %s\n", m.PersonaType)
		fmt.Fprintf(&sb, "- Sections analyzed: %d\n", m.TotalSectionsAnalyzed)
		fmt.Fprintf(&sb, "- Priority split: %d high / %d medium / %d low\n",
			m.HighPrioritySections, m.MediumPrioritySections, m.LowPrioritySections)
		fmt.Fprintf(&sb, "- Average relevance: %.3f\n", m.AverageRelevanceScore)
		if len(m.TopInsights) > 0 {
			sb.WriteString("- Top insights:\n")
			for _, obs := range m.TopInsights {
				sb.WriteString("  - " + obs + "\n")
			}
		}
	}
	return sb.String()
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not specified)"
	}
	return s
}
