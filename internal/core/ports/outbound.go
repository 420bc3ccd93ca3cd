package ports

import (
	"context"
	"io"

	"github.com/kirillkom/docsight/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveAnalysis(ctx context.Context, id string, analysis domain.Analysis, tags []string) error
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes ingestion events.
type MessageQueue interface {
	PublishDocumentIngested(ctx context.Context, documentID string) error
	SubscribeDocumentIngested(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor turns a raw file into plain text, dispatching on the
// declared extension. The only stage that may perform I/O.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (string, error)
}

// OCREngine recognizes text in an image payload.
type OCREngine interface {
	Recognize(ctx context.Context, filename string, image []byte) (string, error)
}

// TextAnalytics covers the pure, total NLP stages that follow extraction.
// Every method degrades gracefully on empty input and never fails.
type TextAnalytics interface {
	Classify(text, filename string) domain.DocumentType
	Entities(text string) domain.EntitySet
	Keywords(text string) []string
	Summarize(text string, docType domain.DocumentType, entities domain.EntitySet) string
	Sentiment(text string) domain.Sentiment
	Tags(text string, docType domain.DocumentType) []string
}

// DocumentAnalyzer runs the full pipeline for one raw file.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, input domain.RawInput) (domain.Analysis, error)
}
