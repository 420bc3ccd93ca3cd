package analysis

import (
	"strings"

	"github.com/kirillkom/docsight/internal/core/domain"
)

type typeRule struct {
	label    domain.DocumentType
	keywords []string
}

// Rule order is the precedence contract: evaluation stops at the first
// matching rule, so a text mentioning both "invoice" and "agreement" is an
// Invoice. Do not reorder.
var typeRules = []typeRule{
	{domain.TypeInvoice, []string{"invoice", "bill to", "payment due", "total amount", "bill"}},
	{domain.TypeContract, []string{"agreement", "contract", "terms and conditions", "parties", "hereby agree"}},
	{domain.TypeReport, []string{"report", "analysis", "findings", "conclusion"}},
	{domain.TypeResume, []string{"resume", "cv", "curriculum vitae", "experience", "education", "skills"}},
	{domain.TypeProposal, []string{"proposal", "proposed", "solution"}},
}

// Classify assigns a document type from case-insensitive substring signals
// in the text and the filename. Defaults to General when nothing matches.
func (e *Engine) Classify(text, filename string) domain.DocumentType {
	textLower := strings.ToLower(text)
	nameLower := strings.ToLower(filename)

	for _, rule := range typeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(textLower, keyword) || strings.Contains(nameLower, keyword) {
				return rule.label
			}
		}
	}
	return domain.TypeGeneral
}
