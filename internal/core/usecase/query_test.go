package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kirillkom/docsight/internal/core/domain"
)

type queryRepoFake struct {
	doc    *domain.Document
	docs   []domain.Document
	filter domain.ListFilter
	err    error
}

func (f *queryRepoFake) Create(context.Context, *domain.Document) error {
	return errors.New("not implemented")
}

func (f *queryRepoFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func (f *queryRepoFake) List(_ context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func (f *queryRepoFake) UpdateStatus(context.Context, string, domain.DocumentStatus, string) error {
	return errors.New("not implemented")
}
func (f *queryRepoFake) SaveAnalysis(context.Context, string, domain.Analysis, []string) error {
	return errors.New("not implemented")
}

func TestQueryGetByIDPreservesNotFoundKind(t *testing.T) {
	repo := &queryRepoFake{err: domain.WrapError(domain.ErrDocumentNotFound, "get document", errors.New("no rows"))}
	uc := NewQueryDocumentsUseCase(repo)

	_, err := uc.GetByID(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestQueryListClampsLimit(t *testing.T) {
	repo := &queryRepoFake{docs: []domain.Document{{ID: "doc-1"}}}
	uc := NewQueryDocumentsUseCase(repo)

	docs, err := uc.List(context.Background(), domain.ListFilter{Limit: 10_000, Tag: "invoice"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected one document, got %d", len(docs))
	}
	if repo.filter.Limit != maxListLimit {
		t.Fatalf("expected clamped limit %d, got %d", maxListLimit, repo.filter.Limit)
	}
	if repo.filter.Tag != "invoice" {
		t.Fatalf("expected tag filter preserved, got %q", repo.filter.Tag)
	}
}
