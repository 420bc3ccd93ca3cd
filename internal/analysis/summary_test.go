package analysis

import (
	"strings"
	"testing"

	"github.com/kirillkom/docsight/internal/core/domain"
)

func TestSummarizePicksTypeRelevantSentences(t *testing.T) {
	e := NewEngine()

	text := "Invoice for consulting services. Total amount due is $500. Please remit payment promptly. The weather was nice."
	summary := e.Summarize(text, domain.TypeInvoice, e.Entities(text))

	if !strings.HasPrefix(summary, "This invoice contains ") {
		t.Fatalf("summary = %q, want invoice lead clause", summary)
	}
	if !strings.Contains(summary, "Total amount due is $500") {
		t.Fatalf("summary = %q, want the amount sentence", summary)
	}
	if !strings.Contains(summary, "Please remit payment promptly") {
		t.Fatalf("summary = %q, want the payment sentence", summary)
	}
	if strings.Contains(summary, "The weather was nice") {
		t.Fatalf("summary = %q, must not include irrelevant sentence", summary)
	}
}

func TestSummarizeMentionsMonetaryEntities(t *testing.T) {
	e := NewEngine()

	text := "Total amount due is $500."
	summary := e.Summarize(text, domain.TypeInvoice, e.Entities(text))

	if !strings.Contains(summary, "monetary values ($500)") {
		t.Fatalf("summary = %q, want monetary mention", summary)
	}
}

func TestSummarizeLimitsEntityMentionsToTwoCategories(t *testing.T) {
	e := NewEngine()

	entities := domain.EntitySet{
		People:        []string{"John Smith"},
		Organizations: []string{"Acme Corp"},
		Dates:         []string{"1/1/2020"},
		Monetary:      []string{"$10.00"},
	}
	summary := e.Summarize("", domain.TypeGeneral, entities)

	if !strings.Contains(summary, "references to people (John Smith)") {
		t.Fatalf("summary = %q, want people mention", summary)
	}
	if !strings.Contains(summary, "organizations (Acme Corp)") {
		t.Fatalf("summary = %q, want organizations mention", summary)
	}
	if strings.Contains(summary, "dates (") || strings.Contains(summary, "monetary values (") {
		t.Fatalf("summary = %q, want at most two entity mentions", summary)
	}
}

func TestSummarizeEntityMentionShowsAtMostTwoValues(t *testing.T) {
	e := NewEngine()

	entities := domain.EntitySet{
		People: []string{"Ann Ably", "Bob Baker", "Cal Cooper"},
	}
	summary := e.Summarize("", domain.TypeGeneral, entities)

	if !strings.Contains(summary, "references to people (Ann Ably, Bob Baker)") {
		t.Fatalf("summary = %q, want two people examples", summary)
	}
	if strings.Contains(summary, "Cal Cooper") {
		t.Fatalf("summary = %q, third example must be dropped", summary)
	}
}

func TestSummarizeBackfillsWithLeadingSentences(t *testing.T) {
	e := NewEngine()

	text := "First sentence here. Second sentence here. Third sentence here. Fourth sentence here."
	summary := e.Summarize(text, domain.TypeGeneral, domain.EntitySet{})

	if !strings.Contains(summary, "First sentence here") {
		t.Fatalf("summary = %q, want backfilled first sentence", summary)
	}
	if strings.Contains(summary, "Fourth sentence here") {
		t.Fatalf("summary = %q, backfill is capped at three sentences", summary)
	}
}

func TestSummarizeEndsWithSinglePeriod(t *testing.T) {
	e := NewEngine()

	for _, text := range []string{
		"Total amount due is $500.",
		"Nothing remarkable at all",
		"",
	} {
		summary := e.Summarize(text, domain.TypeInvoice, domain.EntitySet{})
		if !strings.HasSuffix(summary, ".") {
			t.Fatalf("summary = %q, want trailing period", summary)
		}
		if strings.HasSuffix(summary, "..") {
			t.Fatalf("summary = %q, want a single trailing period", summary)
		}
	}
}

func TestSummarizeGeneralLeadClause(t *testing.T) {
	e := NewEngine()

	summary := e.Summarize("Some plain content.", domain.TypeGeneral, domain.EntitySet{})
	if !strings.HasPrefix(summary, "This general document contains ") {
		t.Fatalf("summary = %q, want general lead clause", summary)
	}
}
