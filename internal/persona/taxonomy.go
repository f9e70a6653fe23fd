package persona

// roleCategory pairs a named category with the keyword substrings that vote
// for it. Declaration order matters: classification ties resolve to the
// earliest entry.
type roleCategory struct {
	name  string
	terms []string
}

var roleTaxonomy = []roleCategory{
	{"researcher", []string{"research", "study", "analysis", "methodology", "data", "experiment",
		"hypothesis", "literature", "publication", "findings", "results", "conclusion"}},
	{"student", []string{"learn", "study", "understand", "concept", "theory", "practice",
		"example", "exercise", "exam", "assignment", "knowledge", "skill"}},
	{"analyst", []string{"analyze", "evaluate", "assess", "trend", "pattern", "metric",
		"performance", "comparison", "forecast", "strategy", "insight", "recommendation"}},
	{"teacher", []string{"teach", "explain", "instruction", "curriculum", "lesson", "education",
		"training", "guidance", "demonstration", "assessment", "learning", "development"}},
	{"manager", []string{"manage", "plan", "organize", "control", "strategy", "decision",
		"resource", "team", "process", "objective", "performance", "leadership"}},
	{"entrepreneur", []string{"business", "opportunity", "market", "innovation", "startup", "venture",
		"revenue", "growth", "investment", "competition", "strategy", "scalability"}},
}

var taskTaxonomy = []roleCategory{
	{"review", []string{"review", "summary", "overview", "evaluation", "assessment", "analysis"}},
	{"learn", []string{"learn", "understand", "study", "master", "practice", "acquire"}},
	{"analyze", []string{"analyze", "examine", "investigate", "evaluate", "assess", "compare"}},
	{"prepare", []string{"prepare", "plan", "organize", "design", "develop", "create"}},
	{"summarize", []string{"summarize", "condense", "extract", "highlight", "synthesize", "distill"}},
}

// roleFallbacks are consulted in order when no taxonomy keyword scores at
// all; the first category with any matching term wins.
var roleFallbacks = []roleCategory{
	{"researcher", []string{"phd", "research", "scientist", "academic"}},
	{"student", []string{"student", "undergraduate", "graduate"}},
	{"analyst", []string{"analyst", "investment", "business"}},
	{"teacher", []string{"teacher", "trainer", "instructor"}},
	{"manager", []string{"manager", "director", "executive"}},
	{"entrepreneur", []string{"entrepreneur", "founder", "startup"}},
}

// GeneralCategory is the fallback for unrecognized roles and tasks.
const GeneralCategory = "general"

func roleTerms(category string) []string {
	for _, rc := range roleTaxonomy {
		if rc.name == category {
			return rc.terms
		}
	}
	return nil
}

func taskTerms(category string) []string {
	for _, tc := range taskTaxonomy {
		if tc.name == category {
			return tc.terms
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
