package analyze

// Detection method names, in resolver precedence order.
const (
	MethodHeader    = "header"
	MethodParagraph = "paragraph"
	MethodList      = "list"
)

// candidate is a pre-resolution section emitted by one detector.
type candidate struct {
	title   string
	page    int
	content string
	method  string
}

// Section is a deduplicated span of page text identified by one of the
// detection strategies, carrying its stable id and scores.
type Section struct {
	SectionTitle    string  `json:"section_title"`
	PageNumber      int     `json:"page_number"`
	Content         string  `json:"content"`
	DetectionMethod string  `json:"detection_method"`
	SectionID       string  `json:"section_id"`
	WordCount       int     `json:"word_count"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// PageText is the per-page record carried in an Analysis. Text is trimmed;
// CharCount keeps the raw extraction length.
type PageText struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
	CharCount  int    `json:"char_count"`
}

// Metadata summarizes one analyzed document. Error is set only on the
// degraded record produced when extraction failed.
type Metadata struct {
	Filename            string `json:"filename"`
	TotalPages          int    `json:"total_pages"`
	TotalCharacters     int    `json:"total_characters"`
	TotalSections       int    `json:"total_sections"`
	ProcessingTimestamp string `json:"processing_timestamp,omitempty"`
	Error               string `json:"error,omitempty"`
}

// Analysis is the full structural analysis of one document.
type Analysis struct {
	Metadata Metadata   `json:"metadata"`
	FullText string     `json:"full_text"`
	Pages    []PageText `json:"pages"`
	Sections []Section  `json:"sections"`
}
