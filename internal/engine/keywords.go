// Package engine implements the fit scoring and tailoring engine: it
// extracts keywords from a job description, scores profile sections against
// them, filters and reorders the profile into a tailored resume, and renders
// the result as Markdown.
package engine

import "strings"

// minKeywordLength filters short tokens ("to", "a") out of the keyword set.
const minKeywordLength = 3

// ExtractKeywords produces the keyword list for a free-text job description:
// lowercase whitespace-split tokens with more than two characters. No
// stemming, no stop-word removal; duplicate tokens are preserved (each
// occurrence counts once in scoring).
func ExtractKeywords(description string) []string {
	fields := strings.Fields(description)
	keywords := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) >= minKeywordLength {
			keywords = append(keywords, strings.ToLower(field))
		}
	}
	return keywords
}

// KeywordScore counts how many keywords occur anywhere in the lowercased
// space-joined text fragments. Matching is substring containment, not
// token-exact: "go" matches inside "good". That behavior is intentional for
// compatibility with the scores this tool has always produced; the resulting
// false positives are a known trade-off.
func KeywordScore(fragments, keywords []string) int {
	text := strings.ToLower(strings.Join(fragments, " "))
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			score++
		}
	}
	return score
}
