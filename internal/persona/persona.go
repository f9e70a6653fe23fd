// Package persona applies a consumer persona and their job-to-be-done to a
// document's structural analysis. It classifies the free-text role and task
// onto fixed categories, scores every section for relevance and alignment,
// derives rule-based insights and key concepts, buckets sections by
// priority, and rolls the results up into a document-level summary. All of
// it is keyword-table driven and deterministic.
package persona

import (
	"strings"

	"github.com/docsiftio/docsift/internal/analyze"
)

// Section is an analyzed section augmented with persona scoring. The
// embedded Section is a copy; augmentation never mutates the input.
type Section struct {
	analyze.Section
	PersonaRelevanceScore float64  `json:"persona_relevance_score"`
	PersonaInsights       []string `json:"persona_insights"`
	KeyConcepts           []string `json:"key_concepts"`
	PersonaPriority       string   `json:"persona_priority"`
	JobAlignmentScore     float64  `json:"job_alignment_score"`
}

// Analysis is the persona-scored view of one document. PersonaRole,
// JobType, and JobContext carry the lowercased request texts.
type Analysis struct {
	PersonaType string    `json:"persona_type"`
	PersonaRole string    `json:"persona_role"`
	JobType     string    `json:"job_type"`
	JobContext  string    `json:"job_context"`
	Sections    []Section `json:"sections"`
	Metadata    Summary   `json:"metadata"`
}

// Processor scores documents against one persona and job. Classification
// happens once at construction; Process then runs per document.
type Processor struct {
	roleDescription string
	taskDescription string
	roleCategory    string
	taskCategory    string
}

// NewProcessor classifies the free-text role and task once and returns a
// Processor bound to them. Empty descriptions are fine and classify as
// general.
func NewProcessor(role, task string) *Processor {
	roleDescription := strings.ToLower(role)
	taskDescription := strings.ToLower(task)
	return &Processor{
		roleDescription: roleDescription,
		taskDescription: taskDescription,
		roleCategory:    ClassifyRole(roleDescription),
		taskCategory:    ClassifyTask(taskDescription),
	}
}

// RoleCategory returns the classified persona category.
func (p *Processor) RoleCategory() string { return p.roleCategory }

// TaskCategory returns the classified job category.
func (p *Processor) TaskCategory() string { return p.taskCategory }

// Process augments every section of the document analysis and builds the
// document summary.
func (p *Processor) Process(doc analyze.Analysis) Analysis {
	sections := make([]Section, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		sections = append(sections, p.augment(s))
	}
	return Analysis{
		PersonaType: p.roleCategory,
		PersonaRole: p.roleDescription,
		JobType:     p.taskDescription,
		JobContext:  p.taskDescription,
		Sections:    sections,
		Metadata:    buildSummary(sections, p.roleCategory),
	}
}

// augment computes the persona fields for one section. Relevance and
// alignment look at the content combined with the title; insights and key
// concepts look at the content alone.
func (p *Processor) augment(s analyze.Section) Section {
	combined := s.Content + " " + s.SectionTitle
	relevance := relevanceScore(combined, p.roleCategory, p.taskCategory, p.taskDescription)
	insights := extractInsights(s.Content, p.roleCategory, p.taskCategory)
	concepts := keyConcepts(s.Content, p.roleCategory)

	return Section{
		Section:               s,
		PersonaRelevanceScore: relevance,
		PersonaInsights:       insights,
		KeyConcepts:           concepts,
		PersonaPriority:       priorityFor(relevance, len(insights), len(concepts)),
		JobAlignmentScore:     alignmentScore(combined, p.taskDescription),
	}
}
