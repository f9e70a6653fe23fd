package analyze

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/docsiftio/docsift/internal/extract"
)

func TestAnalyze_HeaderSectionFromAllCapsLine(t *testing.T) {
	pages := []extract.Page{{
		PageNumber: 1,
		Text:       "FINANCIAL OVERVIEW\nThe quarterly revenue grew by 15%.",
	}}

	a := New(DefaultConfig())
	got := a.Analyze("report.pdf", pages)

	if len(got.Sections) != 2 {
		t.Fatalf("sections: got %d, want 2 (header + paragraph)", len(got.Sections))
	}
	s := got.Sections[0]
	if s.SectionTitle != "FINANCIAL OVERVIEW" {
		t.Fatalf("title: got %q", s.SectionTitle)
	}
	if s.Content != "The quarterly revenue grew by 15%." {
		t.Fatalf("content: got %q", s.Content)
	}
	if s.DetectionMethod != MethodHeader {
		t.Fatalf("method: got %q", s.DetectionMethod)
	}
	if s.PageNumber != 1 {
		t.Fatalf("page: got %d", s.PageNumber)
	}
	if s.SectionID != "report.pdf_section_1" {
		t.Fatalf("id: got %q", s.SectionID)
	}
	if s.WordCount != 6 {
		t.Fatalf("word count: got %d", s.WordCount)
	}
	if got.Sections[1].DetectionMethod != MethodParagraph {
		t.Fatalf("second method: got %q", got.Sections[1].DetectionMethod)
	}
}

func TestMatchHeader_Patterns(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		title string
		ok    bool
	}{
		{"all caps", "FINANCIAL OVERVIEW", "FINANCIAL OVERVIEW", true},
		{"numbered", "1. Introduction to Methods", "1. Introduction to Methods", true},
		{"title case colon", "Budget Overview: detailed numbers", "Budget Overview", true},
		{"chapter", "Chapter 3: Advanced Topics", "Advanced Topics", true},
		{"section dash", "Section 12 - Results Summary", "Results Summary", true},
		{"chapter title too short", "Chapter 1: Intro", "", false},
		{"plain sentence", "The quarterly revenue grew by 15%.", "", false},
		{"caps line too long", strings.Repeat("A", 90), "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			title, ok := matchHeader(tc.line)
			if ok != tc.ok {
				t.Fatalf("ok: got %v, want %v", ok, tc.ok)
			}
			if title != tc.title {
				t.Fatalf("title: got %q, want %q", title, tc.title)
			}
		})
	}
}

func TestGatherHeaderContent_StopsAtNextHeading(t *testing.T) {
	text := "INTRODUCTION SECTION\nSome opening remarks on scope.\n1. First numbered item stops gathering"
	got := gatherHeaderContent(DefaultConfig(), text, "INTRODUCTION SECTION")
	if got != "Some opening remarks on scope." {
		t.Fatalf("content: got %q", got)
	}
}

func TestGatherHeaderContent_SkipsBlankAndTitleLines(t *testing.T) {
	text := "PROJECT STATUS NOTES\n\nfirst remark\n\nsecond remark mentions PROJECT STATUS NOTES\nthird remark"
	got := gatherHeaderContent(DefaultConfig(), text, "PROJECT STATUS NOTES")
	if got != "first remark third remark" {
		t.Fatalf("content: got %q", got)
	}
}

func TestGatherHeaderContent_StopsWhenContentTooLong(t *testing.T) {
	filler := strings.Repeat("x", 600)
	lines := []string{"PADDING SECTION HEADER"}
	for i := 0; i < 5; i++ {
		lines = append(lines, filler)
	}
	got := gatherHeaderContent(DefaultConfig(), strings.Join(lines, "\n"), "PADDING SECTION HEADER")
	// Three lines fit under the limit; the fourth is appended before the
	// accumulated length check trips, the fifth never is.
	want := 4*len(filler) + 3
	if len(got) != want {
		t.Fatalf("content length: got %d, want %d", len(got), want)
	}
}

func TestDetectParagraphs_LengthBounds(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name string
		size int
		want int
	}{
		{"below minimum", 29, 0},
		{"at minimum", 30, 1},
		{"at maximum", 2000, 1},
		{"above maximum", 2001, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pages := []PageText{{PageNumber: 1, Text: strings.Repeat("x", tc.size)}}
			got := detectParagraphs(cfg, pages)
			if len(got) != tc.want {
				t.Fatalf("candidates: got %d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestDetectParagraphs_TitleFromFirstSentence(t *testing.T) {
	para := "Revenue rose. Costs fell in the same period across units."
	pages := []PageText{{PageNumber: 2, Text: para}}
	got := detectParagraphs(DefaultConfig(), pages)
	if len(got) != 1 {
		t.Fatalf("candidates: got %d, want 1", len(got))
	}
	if got[0].title != "Revenue rose" {
		t.Fatalf("title: got %q", got[0].title)
	}
	if got[0].content != para {
		t.Fatalf("content: got %q", got[0].content)
	}
}

func TestDetectLists_JoinStylesAndLookahead(t *testing.T) {
	text := strings.Join([]string{
		"• first bullet point here",
		"• second bullet entry here",
		"also continues lower case",
		"Definite stop line before more text",
	}, "\n")
	got := detectLists(DefaultConfig(), []PageText{{PageNumber: 1, Text: text}})
	if len(got) != 2 {
		t.Fatalf("candidates: got %d, want 2", len(got))
	}
	want := "• first bullet point here\n• second bullet entry here also continues lower case"
	if got[0].content != want {
		t.Fatalf("content: got %q, want %q", got[0].content, want)
	}
	if got[1].content != "• second bullet entry here also continues lower case" {
		t.Fatalf("second content: got %q", got[1].content)
	}
	if got[0].title != "• first bullet point here" {
		t.Fatalf("title: got %q", got[0].title)
	}
}

func TestDetectLists_NumberedMarkers(t *testing.T) {
	text := "1. prepare the dataset for the experiment\n2) run the full pipeline end to end"
	got := detectLists(DefaultConfig(), []PageText{{PageNumber: 1, Text: text}})
	if len(got) != 2 {
		t.Fatalf("candidates: got %d, want 2", len(got))
	}
	if got[0].method != MethodList {
		t.Fatalf("method: got %q", got[0].method)
	}
}

func TestAnalyze_DuplicateTitlesKeepFirstAndSkipIDs(t *testing.T) {
	text := "BUDGET SUMMARY REPORT\nNumbers go up and to the right always."
	pages := []extract.Page{
		{PageNumber: 1, Text: text},
		{PageNumber: 2, Text: text},
	}
	got := New(DefaultConfig()).Analyze("fin.pdf", pages)

	if len(got.Sections) != 2 {
		t.Fatalf("sections: got %d, want 2", len(got.Sections))
	}
	// Candidate order is header(p1), header(p2), paragraph(p1), paragraph(p2);
	// the repeats are rejected but still consume id numbers.
	if got.Sections[0].SectionID != "fin.pdf_section_1" {
		t.Fatalf("first id: got %q", got.Sections[0].SectionID)
	}
	if got.Sections[1].SectionID != "fin.pdf_section_3" {
		t.Fatalf("second id: got %q", got.Sections[1].SectionID)
	}
	if got.Sections[0].PageNumber != 1 {
		t.Fatalf("first occurrence page: got %d", got.Sections[0].PageNumber)
	}
	titles := map[string]int{}
	for _, s := range got.Sections {
		titles[s.SectionTitle]++
	}
	for title, n := range titles {
		if n > 1 {
			t.Fatalf("duplicate title kept: %q", title)
		}
	}
}

func TestAnalyze_CapsSectionCount(t *testing.T) {
	var paras []string
	for i := 0; i < 60; i++ {
		paras = append(paras, fmt.Sprintf("Paragraph number %02d content padding to be long enough.", i))
	}
	pages := []extract.Page{{PageNumber: 1, Text: strings.Join(paras, "\n\n")}}
	got := New(DefaultConfig()).Analyze("big.pdf", pages)

	if len(got.Sections) != 50 {
		t.Fatalf("sections: got %d, want 50", len(got.Sections))
	}
	if got.Sections[49].SectionID != "big.pdf_section_50" {
		t.Fatalf("last id: got %q", got.Sections[49].SectionID)
	}
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	got := New(DefaultConfig()).Analyze("empty.pdf", nil)
	if got.Metadata.TotalPages != 0 || got.Metadata.TotalSections != 0 {
		t.Fatalf("metadata: %+v", got.Metadata)
	}
	if len(got.Sections) != 0 {
		t.Fatalf("sections: got %d", len(got.Sections))
	}
	if got.FullText != "" {
		t.Fatalf("full text: got %q", got.FullText)
	}
}

func TestAnalyze_PageBookkeeping(t *testing.T) {
	raw := "  padded page text  "
	pages := []extract.Page{{PageNumber: 1, Text: raw, CharCount: len(raw)}}
	got := New(DefaultConfig()).Analyze("doc.txt", pages)

	if got.Pages[0].Text != "padded page text" {
		t.Fatalf("page text not trimmed: %q", got.Pages[0].Text)
	}
	if got.Pages[0].CharCount != len(raw) {
		t.Fatalf("char count: got %d, want raw length %d", got.Pages[0].CharCount, len(raw))
	}
	if got.FullText != raw+"\n" {
		t.Fatalf("full text: got %q", got.FullText)
	}
	if got.Metadata.TotalCharacters != len(raw)+1 {
		t.Fatalf("total characters: got %d", got.Metadata.TotalCharacters)
	}
}

func TestFailed_DegradedRecord(t *testing.T) {
	got := Failed("broken.pdf", fmt.Errorf("open pdf broken.pdf: no such file"))
	if got.Metadata.Filename != "broken.pdf" {
		t.Fatalf("filename: got %q", got.Metadata.Filename)
	}
	if got.Metadata.Error == "" {
		t.Fatal("expected error description")
	}
	if got.Pages == nil || got.Sections == nil {
		t.Fatal("expected empty, non-nil pages and sections")
	}
	if len(got.Pages) != 0 || len(got.Sections) != 0 {
		t.Fatalf("expected empty pages and sections, got %d/%d", len(got.Pages), len(got.Sections))
	}
}

func TestConfidence_WeightsAndBounds(t *testing.T) {
	cases := []struct {
		name string
		c    candidate
		want float64
	}{
		{"bare list", candidate{title: "• tiny", content: "short", method: MethodList}, 0.6},
		{"header with bonuses", candidate{
			title:   "FINANCIAL OVERVIEW",
			content: strings.Repeat("y", 150),
			method:  MethodHeader,
		}, 1.0},
		{"paragraph long content", candidate{
			title:   "Short",
			content: strings.Repeat("y", 150),
			method:  MethodParagraph,
		}, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := confidence(tc.c)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("confidence: got %v, want %v", got, tc.want)
			}
			if got < 0 || got > 1 {
				t.Fatalf("confidence out of range: %v", got)
			}
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	pages := []extract.Page{
		{PageNumber: 1, Text: "PROJECT OVERVIEW\nScope and staffing plans for the next quarter.\n\n• hire two engineers for the platform team\n• close the audit findings before June"},
		{PageNumber: 2, Text: "Budget Detail: travel and tooling costs itemized by team and month for review."},
	}
	a := New(DefaultConfig())
	first := a.Analyze("plan.pdf", pages)
	second := a.Analyze("plan.pdf", pages)
	if !reflect.DeepEqual(first.Sections, second.Sections) {
		t.Fatalf("sections differ between runs:\n%+v\n%+v", first.Sections, second.Sections)
	}
}
