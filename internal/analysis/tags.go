package analysis

import (
	"strings"

	"github.com/kirillkom/docsight/internal/core/domain"
)

// Tags derives the label set persisted on the document record: the
// lowercased document type, type-specific secondary tags, then
// content-triggered common tags. The result is deduplicated.
func (e *Engine) Tags(text string, docType domain.DocumentType) []string {
	lower := strings.ToLower(text)
	tags := []string{strings.ToLower(string(docType))}

	switch docType {
	case domain.TypeInvoice:
		tags = append(tags, "invoice", "payment")
		if strings.Contains(lower, "tax") {
			tags = append(tags, "tax")
		}
	case domain.TypeContract:
		tags = append(tags, "legal", "agreement")
		if strings.Contains(lower, "confidential") {
			tags = append(tags, "confidential")
		}
	case domain.TypeReport:
		tags = append(tags, "report")
		if strings.Contains(lower, "financial") {
			tags = append(tags, "financial")
		}
		if containsAny(lower, "quarterly", "q1", "q2", "q3", "q4") {
			tags = append(tags, "quarterly")
		}
	case domain.TypeResume:
		tags = append(tags, "resume", "cv")
		if strings.Contains(lower, "experience") {
			tags = append(tags, "professional")
		}
	case domain.TypeProposal:
		tags = append(tags, "proposal")
		if strings.Contains(lower, "business") {
			tags = append(tags, "business")
		}
	}

	for _, common := range []string{"urgent", "confidential", "draft"} {
		if strings.Contains(lower, common) {
			tags = append(tags, common)
		}
	}

	return dedupe(tags)
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
