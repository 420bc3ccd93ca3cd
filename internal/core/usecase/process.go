package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kirillkom/docsight/internal/core/domain"
	"github.com/kirillkom/docsight/internal/core/ports"
)

// ProcessObserver receives pipeline outcomes for accounting. Implemented
// by the worker's metrics layer; a nil observer disables reporting.
type ProcessObserver interface {
	DocumentAnalyzed(documentType string, degraded bool)
}

type ProcessDocumentUseCase struct {
	repo             ports.DocumentRepository
	storage          ports.ObjectStorage
	analyzer         ports.DocumentAnalyzer
	analytics        ports.TextAnalytics
	degradedFallback bool
	observer         ProcessObserver
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	analyzer ports.DocumentAnalyzer,
	analytics ports.TextAnalytics,
	degradedFallback bool,
	observer ProcessObserver,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:             repo,
		storage:          storage,
		analyzer:         analyzer,
		analytics:        analytics,
		degradedFallback: degradedFallback,
		observer:         observer,
	}
}

// ProcessByID drives one document through the pipeline. Status moves
// uploaded -> processing -> ready, or -> failed when analysis cannot
// produce a result. Extraction failures on image files may instead land
// in ready with fallback metadata when the degraded policy is enabled.
func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.markStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	doc, err := uc.loadDocument(ctx, documentID)
	if err != nil {
		return uc.fail(ctx, documentID, err)
	}

	data, err := uc.readFile(ctx, doc)
	if err != nil {
		return uc.fail(ctx, documentID, err)
	}

	analysis, err := uc.analyzer.Analyze(ctx, domain.RawInput{Name: doc.Filename, Data: data})
	if err != nil {
		if uc.degradedFallback && domain.IsKind(err, domain.ErrExtraction) {
			return uc.completeDegraded(ctx, doc, err)
		}
		return uc.fail(ctx, documentID, err)
	}

	tags := uc.analytics.Tags(analysis.ExtractedText, analysis.DocumentType)
	if err := uc.repo.SaveAnalysis(ctx, doc.ID, analysis, tags); err != nil {
		return uc.fail(ctx, documentID, fmt.Errorf("save analysis: %w", err))
	}

	if err := uc.markStatus(ctx, documentID, domain.StatusReady, ""); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}

	uc.observe(string(analysis.DocumentType), false)
	return nil
}

// completeDegraded keeps a document usable when its content cannot be
// read, typically an OCR backend failure. The document lands in ready
// state with generic metadata and the extraction error on record.
func (uc *ProcessDocumentUseCase) completeDegraded(ctx context.Context, doc *domain.Document, analysisErr error) error {
	analysis := domain.Analysis{
		DocumentType: domain.TypeGeneral,
		Sentiment: domain.Sentiment{
			Label: domain.SentimentNeutral,
		},
	}

	tags := []string{"general"}
	if ext := fileExtension(doc.Filename); ext != "" {
		tags = append(tags, ext)
	}

	if err := uc.repo.SaveAnalysis(ctx, doc.ID, analysis, tags); err != nil {
		return uc.fail(ctx, doc.ID, fmt.Errorf("save degraded analysis: %w", err))
	}
	if err := uc.markStatus(ctx, doc.ID, domain.StatusReady, analysisErr.Error()); err != nil {
		return fmt.Errorf("set status=ready after degraded analysis: %w", err)
	}

	uc.observe(string(domain.TypeGeneral), true)
	return nil
}

func (uc *ProcessDocumentUseCase) loadDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}
	return doc, nil
}

func (uc *ProcessDocumentUseCase) readFile(ctx context.Context, doc *domain.Document) ([]byte, error) {
	rc, err := uc.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open stored file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read stored file: %w", err)
	}
	return data, nil
}

func (uc *ProcessDocumentUseCase) fail(ctx context.Context, documentID string, processErr error) error {
	if failErr := uc.markStatus(ctx, documentID, domain.StatusFailed, processErr.Error()); failErr != nil {
		return fmt.Errorf("%w; mark failed status: %v", processErr, failErr)
	}
	return processErr
}

func (uc *ProcessDocumentUseCase) markStatus(ctx context.Context, documentID string, status domain.DocumentStatus, errMessage string) error {
	return uc.repo.UpdateStatus(ctx, documentID, status, errMessage)
}

func (uc *ProcessDocumentUseCase) observe(documentType string, degraded bool) {
	if uc.observer == nil {
		return
	}
	uc.observer.DocumentAnalyzed(documentType, degraded)
}

func fileExtension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
