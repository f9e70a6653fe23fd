package analyze

import (
	"fmt"
	"math"
	"strings"
)

// resolve walks the combined candidate list once, keeping a candidate when
// its title is longer than 3 characters and unseen so far. Section ids carry
// the candidate's position in the pre-filter list, so id numbering may skip
// values where duplicates were rejected; downstream consumers rely on that
// exact numbering. Output is capped at MaxSections.
func resolve(cfg Config, filename string, candidates []candidate) []Section {
	sections := make([]Section, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for i, c := range candidates {
		if len(c.title) <= 3 {
			continue
		}
		if _, dup := seen[c.title]; dup {
			continue
		}
		seen[c.title] = struct{}{}
		sections = append(sections, Section{
			SectionTitle:    c.title,
			PageNumber:      c.page,
			Content:         c.content,
			DetectionMethod: c.method,
			SectionID:       fmt.Sprintf("%s_section_%d", filename, i+1),
			WordCount:       len(strings.Fields(c.content)),
			ConfidenceScore: confidence(c),
		})
		if len(sections) == cfg.MaxSections {
			break
		}
	}
	return sections
}

// confidence blends a base score with the detection method's weight and
// small quality bonuses for substantial content and descriptive titles.
func confidence(c candidate) float64 {
	score := 0.5
	switch c.method {
	case MethodHeader:
		score += 0.3
	case MethodParagraph:
		score += 0.2
	case MethodList:
		score += 0.1
	}
	if len(c.content) > 100 {
		score += 0.1
	}
	if len(c.title) > 10 {
		score += 0.1
	}
	return math.Min(score, 1.0)
}
