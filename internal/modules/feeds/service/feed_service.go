package service

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/domain"
	feedsout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/port/out"
)

type FeedService struct {
	api feedsout.API
}

func NewFeedService(api feedsout.API) *FeedService {
	return &FeedService{api: api}
}

func (s *FeedService) List(ctx context.Context) ([]domain.Feed, error) {
	return s.api.List(ctx)
}

func (s *FeedService) Add(ctx context.Context, url string) (domain.Feed, error) {
	if err := domain.ValidateURL(url); err != nil {
		return domain.Feed{}, err
	}
	return s.api.Add(ctx, url)
}

func (s *FeedService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, id)
}
