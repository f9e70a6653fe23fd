package persona

// Priority tiers.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// priorityFor buckets a section from its relevance score and the counts of
// insights and key concepts. It is a pure function of those three values.
func priorityFor(relevance float64, insightCount, conceptCount int) string {
	switch {
	case relevance >= 0.6 && insightCount >= 2:
		return PriorityHigh
	case relevance >= 0.3 && (insightCount >= 1 || conceptCount >= 3):
		return PriorityMedium
	default:
		return PriorityLow
	}
}
