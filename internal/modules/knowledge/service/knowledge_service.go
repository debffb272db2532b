package service

import (
	"context"
	"fmt"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/domain"
	knowledgeout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/port/out"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
)

type KnowledgeService struct {
	api knowledgeout.API
}

func NewKnowledgeService(api knowledgeout.API) *KnowledgeService {
	return &KnowledgeService{api: api}
}

func (s *KnowledgeService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	return s.api.List(ctx, filter)
}

// Upload validates the draft before touching the network: a missing file is
// rejected locally with zero backend calls.
func (s *KnowledgeService) Upload(ctx context.Context, upload domain.Upload) (string, error) {
	if err := upload.Validate(); err != nil {
		return "", err
	}
	return s.api.Upload(ctx, upload)
}

func (s *KnowledgeService) Update(ctx context.Context, id int, meta domain.Metadata) error {
	return s.api.Update(ctx, id, meta)
}

func (s *KnowledgeService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, id)
}

func (s *KnowledgeService) BatchDelete(ctx context.Context, ids []int) (string, error) {
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: at least one document id is required", apperrors.ErrInvalidInput)
	}
	return s.api.BatchDelete(ctx, ids)
}
