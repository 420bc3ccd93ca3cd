package usecase

import (
	"context"
	"fmt"

	"github.com/kirillkom/docsight/internal/core/domain"
	"github.com/kirillkom/docsight/internal/core/ports"
)

const maxListLimit = 200

type QueryDocumentsUseCase struct {
	repo ports.DocumentRepository
}

func NewQueryDocumentsUseCase(repo ports.DocumentRepository) *QueryDocumentsUseCase {
	return &QueryDocumentsUseCase{repo: repo}
}

func (uc *QueryDocumentsUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (uc *QueryDocumentsUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	docs, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
