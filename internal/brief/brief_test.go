package brief

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_ObjectDocuments(t *testing.T) {
	input := `{
		"documents": [
			{"filename": "South of France - Cities.pdf", "title": "Cities"},
			{"filename": "South of France - Cuisine.pdf"}
		],
		"persona": {"role": "Travel Planner"},
		"job_to_be_done": {"task": "Plan a trip of 4 days for a group of 10 college friends."}
	}`

	b, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(b.Documents) != 2 {
		t.Fatalf("documents: got %d, want 2", len(b.Documents))
	}
	if b.Documents[0].Filename != "South of France - Cities.pdf" {
		t.Fatalf("filename: got %q", b.Documents[0].Filename)
	}
	if b.Documents[0].Title != "Cities" {
		t.Fatalf("title: got %q", b.Documents[0].Title)
	}
	if b.Persona.Role != "Travel Planner" {
		t.Fatalf("role: got %q", b.Persona.Role)
	}
	if b.Job.Task == "" {
		t.Fatal("task: empty")
	}
}

func TestParse_StringDocuments(t *testing.T) {
	input := `{
		"documents": ["input/report.pdf", "input/appendix.pdf"],
		"persona": {"role": "Analyst"},
		"job_to_be_done": {"task": "Review"}
	}`

	b, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(b.Documents) != 2 {
		t.Fatalf("documents: got %d, want 2", len(b.Documents))
	}
	if b.Documents[1].Filename != "input/appendix.pdf" {
		t.Fatalf("filename: got %q", b.Documents[1].Filename)
	}
}

func TestParse_MixedDocumentForms(t *testing.T) {
	input := `{"documents": ["a.pdf", {"filename": "b.pdf"}]}`
	b, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Documents[0].Filename != "a.pdf" || b.Documents[1].Filename != "b.pdf" {
		t.Fatalf("documents: got %+v", b.Documents)
	}
}

func TestParse_MissingPersonaDefaultsEmpty(t *testing.T) {
	b, err := Parse([]byte(`{"documents": ["a.pdf"]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Persona.Role != "" || b.Job.Task != "" {
		t.Fatalf("expected empty persona and job, got %+v", b)
	}
}

func TestParse_RejectsDocumentWithoutFilename(t *testing.T) {
	_, err := Parse([]byte(`{"documents": [{"title": "no file"}]}`))
	if err == nil {
		t.Fatal("expected error for document without filename")
	}
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"documents": [`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input_spec_1.json")
	content := `{"documents": ["doc.pdf"], "persona": {"role": "Student"}, "job_to_be_done": {"task": "learn"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Persona.Role != "Student" {
		t.Fatalf("role: got %q", b.Persona.Role)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
