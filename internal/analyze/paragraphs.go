package analyze

import "strings"

// detectParagraphs splits each page on blank-line boundaries and keeps
// paragraphs whose length falls inside the configured bounds.
func detectParagraphs(cfg Config, pages []PageText) []candidate {
	var out []candidate
	for _, page := range pages {
		for _, para := range strings.Split(page.Text, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			if len(para) < cfg.MinSectionLength || len(para) > cfg.MaxSectionLength {
				continue
			}
			out = append(out, candidate{
				title:   paragraphTitle(para),
				page:    page.PageNumber,
				content: para,
				method:  MethodParagraph,
			})
		}
	}
	return out
}

// paragraphTitle is the paragraph's first sentence, truncated. Without a
// sentence boundary the whole paragraph counts as the first sentence.
func paragraphTitle(para string) string {
	first, _, _ := strings.Cut(para, ". ")
	return truncate(first, 50)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
