package analyze

import (
	"regexp"
	"strings"
)

// Header shapes, tried in order: all-caps line, numbered heading, Title Case
// phrase ending in a colon, explicit chapter or section marker.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z][A-Z\s]{5,40})$`),
	regexp.MustCompile(`^(\d+\.?\s+[A-Z][^.!?]*?)(?:\n|$)`),
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*):`),
	regexp.MustCompile(`(?:Chapter|Section)\s+\d+[:\-\s]*(.+)`),
}

// Lines that terminate content gathering below a header.
var (
	allCapsStop  = regexp.MustCompile(`^[A-Z][A-Z\s]{5,}$`)
	numberedStop = regexp.MustCompile(`^\d+\.?\s+[A-Z]`)
)

// detectHeaders scans page lines for heading-shaped text and gathers the
// lines that follow on the same page as section content.
func detectHeaders(cfg Config, pages []PageText) []candidate {
	var out []candidate
	for _, page := range pages {
		for _, raw := range strings.Split(page.Text, "\n") {
			line := strings.TrimSpace(raw)
			if len(line) < 5 {
				continue
			}
			title, ok := matchHeader(line)
			if !ok {
				continue
			}
			content := gatherHeaderContent(cfg, page.Text, title)
			if content == "" {
				continue
			}
			out = append(out, candidate{title: title, page: page.PageNumber, content: content, method: MethodHeader})
		}
	}
	return out
}

// matchHeader tries each header shape and returns the first cleaned title of
// acceptable length. A pattern whose title fails the length bounds does not
// stop the later patterns from matching.
func matchHeader(line string) (string, bool) {
	for _, re := range headerPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimRight(strings.TrimSpace(m[1]), ":")
		if len(title) > 5 && len(title) < 80 {
			return title, true
		}
	}
	return "", false
}

// gatherHeaderContent collects the lines following the header until another
// heading-shaped line appears or the accumulated content exceeds the length
// limit. Lines containing the title are skipped wherever they occur; blank
// lines are skipped without ending the section.
func gatherHeaderContent(cfg Config, pageText, title string) string {
	var kept []string
	total := 0
	found := false
	for _, raw := range strings.Split(pageText, "\n") {
		line := strings.TrimSpace(raw)
		if strings.Contains(line, title) {
			found = true
			continue
		}
		if !found || line == "" {
			continue
		}
		if allCapsStop.MatchString(line) || numberedStop.MatchString(line) {
			break
		}
		if total > cfg.MaxSectionLength {
			break
		}
		if len(kept) > 0 {
			total++
		}
		total += len(line)
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}
