package analyze

import (
	"regexp"
	"strings"
)

var (
	bulletItem     = regexp.MustCompile(`^[•\-*]\s+.+`)
	numberedItem   = regexp.MustCompile(`^\d+[.)]\s+.+`)
	uppercaseStart = regexp.MustCompile(`^[A-Z]`)
)

// detectLists finds bullet and numbered list items. Every item line starts a
// candidate of its own; the resolver's title dedup collapses the overlap.
func detectLists(cfg Config, pages []PageText) []candidate {
	var out []candidate
	for _, page := range pages {
		lines := strings.Split(page.Text, "\n")
		for i, raw := range lines {
			line := strings.TrimSpace(raw)
			if !isListItem(line) {
				continue
			}
			content := gatherListContent(cfg, lines, i)
			if len(content) <= cfg.MinSectionLength {
				continue
			}
			out = append(out, candidate{
				title:   truncate(line, 50),
				page:    page.PageNumber,
				content: content,
				method:  MethodList,
			})
		}
	}
	return out
}

func isListItem(line string) bool {
	return bulletItem.MatchString(line) || numberedItem.MatchString(line)
}

// gatherListContent reads up to the lookahead limit past the item line,
// joining further list items with newlines and wrapped text with spaces.
// Blank lines are skipped without ending the section.
func gatherListContent(cfg Config, lines []string, start int) string {
	content := strings.TrimSpace(lines[start])
	end := start + cfg.MaxLookaheadLines + 1
	if end > len(lines) {
		end = len(lines)
	}
	for j := start + 1; j < end; j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			continue
		}
		if !isContinuation(next) {
			break
		}
		if isListItem(next) {
			content += "\n" + next
		} else {
			content += " " + next
		}
	}
	return content
}

// A continuation is another list item or wrapped text that does not start
// with an uppercase letter.
func isContinuation(line string) bool {
	return isListItem(line) || !uppercaseStart.MatchString(line)
}
