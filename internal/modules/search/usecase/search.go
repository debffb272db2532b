package usecase

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/dto"
	searchin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/port/in"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/service"
)

type Interactor struct {
	svc *service.SearchService
}

func NewInteractor(svc *service.SearchService) searchin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Ask(ctx context.Context, input dto.AskInput) (dto.ResultOutput, error) {
	result, err := i.svc.Ask(ctx, input.Query)
	if err != nil {
		return dto.ResultOutput{}, err
	}
	return dto.ResultOutput{Answer: result.Answer, Source: result.Source}, nil
}
