// Package keywords scrapes the bullet points out of generated department
// reports and ranks them by how often they recur across departments.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

var (
	strengthRe = regexp.MustCompile(`(?i)Key Strengths:\s*((?:- .+\n?)+)`)
	weaknessRe = regexp.MustCompile(`(?i)Areas of Improvement:\s*((?:- .+\n?)+)`)
)

// Extract pulls the bullet contents out of the "Key Strengths:" and
// "Areas of Improvement:" sections of a feedback text. Headings match
// case-insensitively; a section ends at the first non-bullet line. An absent
// heading yields an empty list.
func Extract(feedbackText string) (strengths, weaknesses []string) {
	strengths = extractSection(strengthRe, feedbackText)
	weaknesses = extractSection(weaknessRe, feedbackText)
	return strengths, weaknesses
}

func extractSection(re *regexp.Regexp, text string) []string {
	items := []string{}
	match := re.FindStringSubmatch(text)
	if match == nil {
		return items
	}
	for _, line := range strings.Split(match[1], "\n") {
		item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// TopKeywords counts occurrences of each trimmed item and returns at most
// limit distinct items, most frequent first. Ties keep first-seen order, so
// the result is deterministic for a fixed input order.
func TopKeywords(items []string, limit int) []string {
	counts := map[string]int{}
	order := []string{}
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, seen := counts[trimmed]; !seen {
			order = append(order, trimmed)
		}
		counts[trimmed]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}
