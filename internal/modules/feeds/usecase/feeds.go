package usecase

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/dto"
	feedsin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/port/in"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/service"
)

type Interactor struct {
	svc *service.FeedService
}

func NewInteractor(svc *service.FeedService) feedsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.FeedOutput, error) {
	feeds, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FeedOutput, 0, len(feeds))
	for _, feed := range feeds {
		out = append(out, dto.FeedOutput{ID: feed.ID, URL: feed.URL})
	}
	return out, nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.FeedOutput, error) {
	feed, err := i.svc.Add(ctx, input.URL)
	if err != nil {
		return dto.FeedOutput{}, err
	}
	return dto.FeedOutput{ID: feed.ID, URL: feed.URL}, nil
}

func (i *Interactor) Delete(ctx context.Context, id int) error {
	return i.svc.Delete(ctx, id)
}
