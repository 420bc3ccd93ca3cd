package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kirillkom/docsight/internal/core/domain"
)

const defaultListLimit = 50

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026082801)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	storage_path TEXT NOT NULL,
	document_type TEXT NOT NULL DEFAULT '',
	tags JSONB NOT NULL DEFAULT '[]'::jsonb,
	keywords JSONB NOT NULL DEFAULT '[]'::jsonb,
	entities JSONB NOT NULL DEFAULT '{}'::jsonb,
	summary TEXT NOT NULL DEFAULT '',
	sentiment_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	sentiment_label TEXT NOT NULL DEFAULT '',
	sentiment_confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	extracted_text TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);
CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(document_type);
CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_documents_tags ON documents USING GIN (tags);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	tagsJSON, keywordsJSON, entitiesJSON, err := marshalAnalysisColumns(doc.Tags, doc.Keywords, doc.Entities)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO documents (
	id, filename, mime_type, storage_path, document_type, tags, keywords, entities,
	summary, sentiment_score, sentiment_label, sentiment_confidence, extracted_text,
	status, error_message, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
`,
		doc.ID, doc.Filename, doc.MimeType, doc.StoragePath, string(doc.DocumentType),
		tagsJSON, keywordsJSON, entitiesJSON,
		doc.Summary, doc.Sentiment.Score, string(doc.Sentiment.Label), doc.Sentiment.Confidence, doc.ExtractedText,
		string(doc.Status), doc.Error, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

const documentColumns = `id, filename, mime_type, storage_path, document_type, tags, keywords, entities,
summary, sentiment_score, sentiment_label, sentiment_confidence, extracted_text,
status, error_message, created_at, updated_at`

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+documentColumns+`
FROM documents
WHERE id = $1
`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document "+id, err)
		}
		return nil, err
	}
	return doc, nil
}

func (r *DocumentRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, strings.ReplaceAll(condition, "?", "$"+strconv.Itoa(len(args))))
	}

	if filter.Status != "" {
		addCondition("status = ?", string(filter.Status))
	}
	if filter.DocumentType != "" {
		addCondition("document_type = ?", string(filter.DocumentType))
	}
	if filter.Tag != "" {
		addCondition("tags @> ?", jsonArray(filter.Tag))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		placeholder := "$" + strconv.Itoa(len(args))
		conditions = append(conditions, "(filename ILIKE "+placeholder+" OR summary ILIKE "+placeholder+")")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT ` + documentColumns + ` FROM documents`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE documents
SET status = $2, error_message = $3, updated_at = $4
WHERE id = $1
`, id, string(status), errMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return requireRowAffected(result, "update status of document "+id)
}

func (r *DocumentRepository) SaveAnalysis(ctx context.Context, id string, analysis domain.Analysis, tags []string) error {
	tagsJSON, keywordsJSON, entitiesJSON, err := marshalAnalysisColumns(tags, analysis.Keywords, analysis.Entities)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE documents
SET document_type = $2, tags = $3, keywords = $4, entities = $5, summary = $6,
	sentiment_score = $7, sentiment_label = $8, sentiment_confidence = $9,
	extracted_text = $10, updated_at = $11
WHERE id = $1
`, id, string(analysis.DocumentType), tagsJSON, keywordsJSON, entitiesJSON, analysis.Summary,
		analysis.Sentiment.Score, string(analysis.Sentiment.Label), analysis.Sentiment.Confidence,
		analysis.ExtractedText, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return requireRowAffected(result, "save analysis of document "+id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var (
		doc          domain.Document
		tagsRaw      []byte
		keywordsRaw  []byte
		entitiesRaw  []byte
		documentType string
		label        string
		status       string
	)

	err := row.Scan(
		&doc.ID, &doc.Filename, &doc.MimeType, &doc.StoragePath, &documentType,
		&tagsRaw, &keywordsRaw, &entitiesRaw,
		&doc.Summary, &doc.Sentiment.Score, &label, &doc.Sentiment.Confidence, &doc.ExtractedText,
		&status, &doc.Error, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}

	if err := json.Unmarshal(tagsRaw, &doc.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if err := json.Unmarshal(keywordsRaw, &doc.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshal keywords: %w", err)
	}
	if err := json.Unmarshal(entitiesRaw, &doc.Entities); err != nil {
		return nil, fmt.Errorf("unmarshal entities: %w", err)
	}
	doc.DocumentType = domain.DocumentType(documentType)
	doc.Sentiment.Label = domain.SentimentLabel(label)
	doc.Status = domain.DocumentStatus(status)
	return &doc, nil
}

func marshalAnalysisColumns(tags, keywords []string, entities domain.EntitySet) ([]byte, []byte, []byte, error) {
	if tags == nil {
		tags = []string{}
	}
	if keywords == nil {
		keywords = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal tags: %w", err)
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal keywords: %w", err)
	}
	entitiesJSON, err := json.Marshal(entities)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal entities: %w", err)
	}
	return tagsJSON, keywordsJSON, entitiesJSON, nil
}

func jsonArray(value string) []byte {
	raw, _ := json.Marshal([]string{value})
	return raw
}

func requireRowAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrDocumentNotFound, op, sql.ErrNoRows)
	}
	return nil
}
