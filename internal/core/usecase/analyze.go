package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kirillkom/docsight/internal/core/domain"
	"github.com/kirillkom/docsight/internal/core/ports"
)

// AnalyzeDocumentUseCase runs the full pipeline for a single raw file:
// extraction first, then the pure text stages. Only extraction can fail;
// every later stage degrades gracefully on whatever text it receives.
type AnalyzeDocumentUseCase struct {
	extractor      ports.TextExtractor
	analytics      ports.TextAnalytics
	extractTimeout time.Duration
}

func NewAnalyzeDocumentUseCase(
	extractor ports.TextExtractor,
	analytics ports.TextAnalytics,
	extractTimeout time.Duration,
) *AnalyzeDocumentUseCase {
	return &AnalyzeDocumentUseCase{
		extractor:      extractor,
		analytics:      analytics,
		extractTimeout: extractTimeout,
	}
}

func (uc *AnalyzeDocumentUseCase) Analyze(ctx context.Context, input domain.RawInput) (domain.Analysis, error) {
	text, err := uc.extract(ctx, input)
	if err != nil {
		return domain.Analysis{}, domain.WrapError(domain.ErrAnalysisFailed, "analyze "+input.Name, err)
	}

	docType := uc.analytics.Classify(text, input.Name)
	// Entities are computed once and reused by the summarizer.
	entities := uc.analytics.Entities(text)

	return domain.Analysis{
		ExtractedText: text,
		DocumentType:  docType,
		Entities:      entities,
		Keywords:      uc.analytics.Keywords(text),
		Summary:       uc.analytics.Summarize(text, docType, entities),
		Sentiment:     uc.analytics.Sentiment(text),
	}, nil
}

func (uc *AnalyzeDocumentUseCase) extract(ctx context.Context, input domain.RawInput) (string, error) {
	if uc.extractTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.extractTimeout)
		defer cancel()
	}

	text, err := uc.extractor.Extract(ctx, input.Name, input.Data)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}
