package in

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.FeedOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.FeedOutput, error)
	Delete(ctx context.Context, id int) error
}
