package in

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/dto"
)

type Usecase interface {
	Ask(ctx context.Context, input dto.AskInput) (dto.ResultOutput, error)
}
