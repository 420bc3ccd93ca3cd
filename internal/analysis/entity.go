package analysis

import (
	"regexp"

	"github.com/kirillkom/docsight/internal/core/domain"
)

const maxEntitiesPerCategory = 5

// English-oriented, capitalization-sensitive patterns. No disambiguation
// and no cross-category exclusivity: overlapping spans may land in more
// than one category.
var (
	peoplePattern   = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)
	orgPattern      = regexp.MustCompile(`[A-Z][a-z]+ (?:Inc|LLC|Corp|Corporation|Company|Co\.|Ltd)`)
	locationPattern = regexp.MustCompile(`[A-Z][a-z]+, [A-Z]{2}|[A-Z][a-z]+, [A-Z][a-z]+`)
	datePattern     = regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}|\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`)
	moneyPattern    = regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\d{1,3}(?:,\d{3})*(?:\.\d{2})? (?:dollars|USD)`)
	miscPattern     = regexp.MustCompile(`Project [A-Z][a-z]+|Version \d+\.\d+|[A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+`)
)

// Entities pattern-matches people, organizations, locations, dates,
// monetary amounts and miscellaneous identifiers. Each category keeps at
// most five unique matches in first-seen order.
func (e *Engine) Entities(text string) domain.EntitySet {
	return domain.EntitySet{
		People:        matchUnique(peoplePattern, text),
		Organizations: matchUnique(orgPattern, text),
		Locations:     matchUnique(locationPattern, text),
		Dates:         matchUnique(datePattern, text),
		Monetary:      matchUnique(moneyPattern, text),
		Misc:          matchUnique(miscPattern, text),
	}
}

func matchUnique(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, maxEntitiesPerCategory)
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
		if len(out) == maxEntitiesPerCategory {
			break
		}
	}
	return out
}
