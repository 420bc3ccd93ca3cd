package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// DocumentType is the closed set of labels the classifier can assign.
type DocumentType string

const (
	TypeInvoice  DocumentType = "Invoice"
	TypeContract DocumentType = "Contract"
	TypeReport   DocumentType = "Report"
	TypeResume   DocumentType = "Resume"
	TypeProposal DocumentType = "Proposal"
	TypeGeneral  DocumentType = "General"
)

type Document struct {
	ID            string       `json:"id"`
	Filename      string       `json:"filename"`
	MimeType      string       `json:"mime_type"`
	StoragePath   string       `json:"storage_path"`
	DocumentType  DocumentType `json:"document_type,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	Keywords      []string     `json:"keywords,omitempty"`
	Entities      EntitySet    `json:"entities"`
	Summary       string       `json:"summary,omitempty"`
	Sentiment     Sentiment    `json:"sentiment"`
	ExtractedText string       `json:"extracted_text,omitempty"`

	Status    DocumentStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// RawInput is the payload handed to one analysis call. It lives only for
// the duration of that call.
type RawInput struct {
	Name string
	Data []byte
}

func (in RawInput) Size() int { return len(in.Data) }

// EntitySet maps each entity category to up to five unique matches in
// first-seen order.
type EntitySet struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
	Monetary      []string `json:"monetary"`
	Misc          []string `json:"misc"`
}

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Sentiment scores stay in [-1, 1]; confidence is capped at 0.9 by
// construction, never 1.0.
type Sentiment struct {
	Score      float64        `json:"score"`
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
}

// Analysis is the aggregate result of one pipeline run. The pipeline is
// stateless; ownership passes to the caller on return.
type Analysis struct {
	ExtractedText string       `json:"extracted_text"`
	DocumentType  DocumentType `json:"document_type"`
	Entities      EntitySet    `json:"entities"`
	Keywords      []string     `json:"keywords"`
	Summary       string       `json:"summary"`
	Sentiment     Sentiment    `json:"sentiment"`
}

// ListFilter narrows document listings.
type ListFilter struct {
	Status       DocumentStatus
	DocumentType DocumentType
	Tag          string
	Query        string
	Limit        int
}
