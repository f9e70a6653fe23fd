package persona

import "strings"

// ClassifyRole maps a free-text role description onto a role category by
// counting keyword substring hits. Ties resolve to the earliest declared
// category. When nothing scores, a short fallback list gets one more chance
// before settling on general.
func ClassifyRole(roleDescription string) string {
	normalized := strings.ToLower(roleDescription)

	best := GeneralCategory
	bestScore := 0
	for _, rc := range roleTaxonomy {
		score := substringHits(normalized, rc.terms)
		if score > bestScore {
			best = rc.name
			bestScore = score
		}
	}
	if bestScore > 0 {
		return best
	}

	for _, rc := range roleFallbacks {
		for _, term := range rc.terms {
			if strings.Contains(normalized, term) {
				return rc.name
			}
		}
	}
	return GeneralCategory
}

// ClassifyTask maps a job description onto a job category with the same
// scoring; tasks have no fallback list.
func ClassifyTask(taskDescription string) string {
	normalized := strings.ToLower(taskDescription)

	best := GeneralCategory
	bestScore := 0
	for _, tc := range taskTaxonomy {
		score := substringHits(normalized, tc.terms)
		if score > bestScore {
			best = tc.name
			bestScore = score
		}
	}
	return best
}

func substringHits(s string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(s, term) {
			n++
		}
	}
	return n
}
