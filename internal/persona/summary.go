package persona

import (
	"math"
	"sort"
)

// Summary is the document-level rollup of one persona pass.
type Summary struct {
	PersonaType            string   `json:"persona_type"`
	TotalSectionsAnalyzed  int      `json:"total_sections_analyzed"`
	HighPrioritySections   int      `json:"high_priority_sections"`
	MediumPrioritySections int      `json:"medium_priority_sections"`
	LowPrioritySections    int      `json:"low_priority_sections"`
	AverageRelevanceScore  float64  `json:"average_relevance_score"`
	TopInsights            []string `json:"top_insights"`
}

// buildSummary counts priority tiers, averages relevance to three decimals,
// and keeps the five most frequent insight strings.
func buildSummary(sections []Section, roleCategory string) Summary {
	high, medium := 0, 0
	total := 0.0
	for _, s := range sections {
		switch s.PersonaPriority {
		case PriorityHigh:
			high++
		case PriorityMedium:
			medium++
		}
		total += s.PersonaRelevanceScore
	}

	count := len(sections)
	divisor := count
	if divisor < 1 {
		divisor = 1
	}
	mean := total / float64(divisor)

	return Summary{
		PersonaType:            roleCategory,
		TotalSectionsAnalyzed:  count,
		HighPrioritySections:   high,
		MediumPrioritySections: medium,
		LowPrioritySections:    count - high - medium,
		AverageRelevanceScore:  math.Round(mean*1000) / 1000,
		TopInsights:            topInsights(sections, 5),
	}
}

// topInsights ranks insight strings by frequency across all sections.
// Frequency ties resolve to first-seen order.
func topInsights(sections []Section, n int) []string {
	counts := make(map[string]int)
	order := []string{}
	for _, s := range sections {
		for _, obs := range s.PersonaInsights {
			if counts[obs] == 0 {
				order = append(order, obs)
			}
			counts[obs]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
