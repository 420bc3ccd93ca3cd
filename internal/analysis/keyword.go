package analysis

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 10

var (
	punctuationPattern = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Keywords ranks recurring non-trivial words by frequency. Tokens of
// length <= 3 and stop-words are discarded; ties keep first-appearance
// order. Returns at most ten tokens.
func (e *Engine) Keywords(text string) []string {
	cleaned := punctuationPattern.ReplaceAllString(strings.ToLower(text), " ")
	words := whitespacePattern.Split(cleaned, -1)

	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
