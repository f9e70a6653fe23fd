package persona

import (
	"math"
	"regexp"
	"strings"
)

var (
	wordToken = regexp.MustCompile(`\w+`)
	longToken = regexp.MustCompile(`\w{4,}`)
)

// tokenize lowercases text and returns its word tokens in order.
func tokenize(text string) []string {
	return wordToken.FindAllString(strings.ToLower(text), -1)
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

func longTokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range longToken.FindAllString(strings.ToLower(text), -1) {
		set[tok] = struct{}{}
	}
	return set
}

// relevanceScore measures how much of the text's vocabulary matches the role
// category's keywords, the task category's keywords, and the raw task
// description. The weighted blend is scaled by ten and capped at 1.0, so
// even modest keyword density saturates the score.
func relevanceScore(text, roleCategory, taskCategory, taskDescription string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}

	roleList := roleTerms(roleCategory)
	taskList := taskTerms(taskCategory)
	taskWords := tokenSet(taskDescription)

	var roleMatches, taskMatches, directMatches int
	for _, tok := range tokens {
		if contains(roleList, tok) {
			roleMatches++
		}
		if contains(taskList, tok) {
			taskMatches++
		}
		if len(tok) > 3 {
			if _, ok := taskWords[tok]; ok {
				directMatches++
			}
		}
	}

	n := float64(len(tokens))
	roleRelevance := float64(roleMatches) / n
	taskRelevance := float64(taskMatches) / n
	directRelevance := float64(directMatches) / n

	combined := 0.4*roleRelevance + 0.3*taskRelevance + 0.3*directRelevance
	return math.Min(combined*10, 1.0)
}

// alignmentScore is the fraction of the task description's longer tokens
// (four characters and up) that also occur in the text. An empty task
// vocabulary aligns with nothing.
func alignmentScore(text, taskDescription string) float64 {
	taskKeywords := longTokenSet(taskDescription)
	if len(taskKeywords) == 0 {
		return 0.0
	}
	contentKeywords := longTokenSet(text)

	matched := 0
	for kw := range taskKeywords {
		if _, ok := contentKeywords[kw]; ok {
			matched++
		}
	}
	return math.Min(float64(matched)/float64(len(taskKeywords)), 1.0)
}
