package service

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/domain"
	searchout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/port/out"
)

type SearchService struct {
	api searchout.API
}

func NewSearchService(api searchout.API) *SearchService {
	return &SearchService{api: api}
}

func (s *SearchService) Ask(ctx context.Context, query string) (domain.Result, error) {
	if err := domain.ValidateQuery(query); err != nil {
		return domain.Result{}, err
	}
	return s.api.Ask(ctx, query)
}
