package analyze

// Config carries the heuristic thresholds used by detection and resolution.
// It is built once and passed by reference; detection never mutates it.
type Config struct {
	// MinSectionLength and MaxSectionLength bound accepted content lengths
	// in bytes.
	MinSectionLength int
	MaxSectionLength int
	// MaxSections caps the number of resolved sections per document.
	MaxSections int
	// MaxLookaheadLines bounds how far list gathering reads past the item
	// line.
	MaxLookaheadLines int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MinSectionLength:  30,
		MaxSectionLength:  2000,
		MaxSections:       50,
		MaxLookaheadLines: 5,
	}
}
