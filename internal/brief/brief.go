package brief

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Brief represents one parsed input specification: the documents to analyze
// plus the persona and job-to-be-done the analysis is biased toward. It
// intentionally keeps only the fields the rest of the pipeline needs.
type Brief struct {
	Documents []DocumentRef `json:"documents"`
	Persona   Persona       `json:"persona"`
	Job       Job           `json:"job_to_be_done"`
}

// DocumentRef names one input document. Specs may list documents either as
// plain path strings or as objects carrying a filename; both decode to the
// same ref.
type DocumentRef struct {
	Filename string `json:"filename"`
	// Title is an optional display title some spec variants carry. It is
	// informational only.
	Title string `json:"title,omitempty"`
}

// Persona is the free-text consumer role. No structure is imposed on it.
type Persona struct {
	Role string `json:"role"`
}

// Job is the free-text task the persona intends to perform.
type Job struct {
	Task string `json:"task"`
}

func (d *DocumentRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Filename = s
		return nil
	}
	type plain DocumentRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = DocumentRef(p)
	return nil
}

// Parse decodes an input specification from JSON. The parser is deliberately
// permissive about missing persona or job text (downstream classification
// treats empty descriptions as "general"), but every listed document must
// name a file.
func Parse(data []byte) (Brief, error) {
	var b Brief
	if err := json.Unmarshal(data, &b); err != nil {
		return Brief{}, fmt.Errorf("parse input spec: %w", err)
	}
	for i, doc := range b.Documents {
		if strings.TrimSpace(doc.Filename) == "" {
			return Brief{}, fmt.Errorf("input spec: documents[%d] has no filename", i)
		}
	}
	return b, nil
}

// Load reads and parses the input specification at path.
func Load(path string) (Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Brief{}, fmt.Errorf("read input spec: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return Brief{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
