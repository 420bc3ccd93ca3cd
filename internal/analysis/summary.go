package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kirillkom/docsight/internal/core/domain"
)

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// Per-type sentence cues. Sentences mentioning one of these are considered
// type-relevant for the synopsis.
var summaryCues = map[domain.DocumentType][]string{
	domain.TypeInvoice:  {"total", "amount", "due", "payment"},
	domain.TypeContract: {"agree", "terms", "parties", "shall"},
	domain.TypeReport:   {"conclusion", "findings", "analysis", "summary"},
	domain.TypeResume:   {"experience", "skills", "education", "objective"},
	domain.TypeProposal: {"propose", "solution", "offer", "recommend"},
	domain.TypeGeneral:  {"important", "key", "main", "summary"},
}

// Summarize composes a short synopsis: a lead clause naming the document
// type, at most two entity-category mentions (people, organizations, dates,
// monetary, in that order, two example values each), then up to three
// type-relevant sentences. When fewer than two sentences match the cues,
// the first up to three raw sentences backfill so the point list is never
// empty while any sentences exist.
func (e *Engine) Summarize(text string, docType domain.DocumentType, entities domain.EntitySet) string {
	sentences := splitSentences(text)

	cues, ok := summaryCues[docType]
	if !ok {
		cues = summaryCues[domain.TypeGeneral]
	}

	var relevant []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, cue := range cues {
			if strings.Contains(lower, cue) {
				relevant = append(relevant, sentence)
				break
			}
		}
	}

	if len(relevant) < 2 && len(sentences) > 0 {
		relevant = append(relevant, sentences[:min(3, len(sentences))]...)
	}

	var b strings.Builder
	b.WriteString("This ")
	b.WriteString(displayType(docType))
	b.WriteString(" contains ")

	mentions := 0
	mention := func(label string, values []string) {
		if mentions >= 2 || len(values) == 0 {
			return
		}
		if len(values) > 2 {
			values = values[:2]
		}
		fmt.Fprintf(&b, "%s (%s), ", label, strings.Join(values, ", "))
		mentions++
	}
	mention("references to people", entities.People)
	mention("organizations", entities.Organizations)
	mention("dates", entities.Dates)
	mention("monetary values", entities.Monetary)

	b.WriteString("and includes the following key points: ")
	if len(relevant) > 3 {
		relevant = relevant[:3]
	}
	b.WriteString(strings.Join(relevant, ". "))

	summary := b.String()
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}

func splitSentences(text string) []string {
	var out []string
	for _, fragment := range sentenceSplitPattern.Split(text, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			out = append(out, fragment)
		}
	}
	return out
}

func displayType(docType domain.DocumentType) string {
	if docType == domain.TypeGeneral {
		return "general document"
	}
	return strings.ToLower(string(docType))
}
