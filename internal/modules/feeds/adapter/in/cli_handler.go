package in

import (
	"context"

	feedsdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/dto"
	feedsin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/port/in"
)

type CLIHandler struct {
	usecase feedsin.Usecase
}

func NewCLIHandler(usecase feedsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]feedsdto.FeedOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Add(ctx context.Context, url string) (feedsdto.FeedOutput, error) {
	return h.usecase.Add(ctx, feedsdto.AddInput{URL: url})
}

func (h CLIHandler) Delete(ctx context.Context, id int) error {
	return h.usecase.Delete(ctx, id)
}
