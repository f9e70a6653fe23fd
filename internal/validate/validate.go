package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed output_schema.json
var outputSchema []byte

// Check validates one persisted output document against the embedded JSON
// schema and then runs the looser semantic checks the schema cannot express.
// Schema violations and malformed JSON are errors; semantic findings come
// back as warnings.
func Check(data []byte) ([]string, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse output: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("output does not match schema: %w", err)
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("output is not a JSON object")
	}
	return semanticWarnings(root), nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("output_schema.json", bytes.NewReader(outputSchema)); err != nil {
		return nil, fmt.Errorf("load output schema: %w", err)
	}
	schema, err := compiler.Compile("output_schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile output schema: %w", err)
	}
	return schema, nil
}

// semanticWarnings flags shapes that are schema-legal but suspicious: an
// output with nothing extracted, importance ranks that go backwards, or a
// ranking whose two views disagree in length.
func semanticWarnings(root map[string]any) []string {
	warnings := []string{}

	sections, _ := root["extracted_sections"].([]any)
	subsections, _ := root["subsection_analysis"].([]any)

	if len(sections) == 0 && len(subsections) == 0 {
		warnings = append(warnings, "no sections or subsections found")
	}
	if len(sections) != len(subsections) {
		warnings = append(warnings, fmt.Sprintf(
			"extracted_sections has %d entries but subsection_analysis has %d",
			len(sections), len(subsections)))
	}
	if !ranksAscending(sections) {
		warnings = append(warnings, "importance ranks are not sequential")
	}

	return warnings
}

func ranksAscending(sections []any) bool {
	prev := 0.0
	for _, s := range sections {
		entry, ok := s.(map[string]any)
		if !ok {
			continue
		}
		rank, ok := entry["importance_rank"].(float64)
		if !ok {
			continue
		}
		if rank < prev {
			return false
		}
		prev = rank
	}
	return true
}
