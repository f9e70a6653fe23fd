package persona

import "strings"

// insightRule fires its observation when any trigger appears in the section
// content.
type insightRule struct {
	triggers    []string
	observation string
}

// Observation rules by role category. Only researcher, student, and analyst
// carry rules; the remaining categories intentionally contribute none.
var roleInsightRules = map[string][]insightRule{
	"researcher": {
		{[]string{"methodology", "method", "approach"}, "Research methodology identified"},
		{[]string{"data", "dataset", "sample"}, "Data sources and datasets mentioned"},
		{[]string{"result", "finding", "conclusion"}, "Research findings and results presented"},
	},
	"student": {
		{[]string{"concept", "principle", "theory"}, "Key concepts for learning identified"},
		{[]string{"example", "illustration", "case"}, "Examples and illustrations available"},
		{[]string{"exercise", "problem", "practice"}, "Practice materials and exercises found"},
	},
	"analyst": {
		{[]string{"trend", "pattern", "analysis"}, "Analytical insights and trends identified"},
		{[]string{"metric", "kpi", "performance"}, "Performance metrics and KPIs mentioned"},
		{[]string{"forecast", "prediction", "projection"}, "Forecasting and predictive information"},
	},
}

// Observation rules by job category; only review and analyze have one.
var taskInsightRules = map[string][]insightRule{
	"review":  {{[]string{"summary", "overview", "abstract"}, "Summary content suitable for review"}},
	"analyze": {{[]string{"comparison", "contrast", "versus"}, "Comparative analysis opportunities"}},
}

// extractInsights applies the role rules and then the task rules against the
// lowercased content. Every matching rule appends its observation, in table
// order.
func extractInsights(content, roleCategory, taskCategory string) []string {
	normalized := strings.ToLower(content)
	observations := []string{}
	for _, rule := range roleInsightRules[roleCategory] {
		if containsAny(normalized, rule.triggers) {
			observations = append(observations, rule.observation)
		}
	}
	for _, rule := range taskInsightRules[taskCategory] {
		if containsAny(normalized, rule.triggers) {
			observations = append(observations, rule.observation)
		}
	}
	return observations
}

// keyConcepts lists, in order of first appearance, the content tokens that
// belong to the role category's keyword list, capped at ten.
func keyConcepts(content, roleCategory string) []string {
	applicable := roleTerms(roleCategory)
	concepts := []string{}
	for _, tok := range tokenize(content) {
		if !contains(applicable, tok) {
			continue
		}
		if len(tok) <= 3 {
			continue
		}
		if contains(concepts, tok) {
			continue
		}
		concepts = append(concepts, tok)
		if len(concepts) == 10 {
			break
		}
	}
	return concepts
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
