package in

import (
	"context"

	searchdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/dto"
	searchin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/port/in"
)

type CLIHandler struct {
	usecase searchin.Usecase
}

func NewCLIHandler(usecase searchin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Ask(ctx context.Context, query string) (searchdto.ResultOutput, error) {
	return h.usecase.Ask(ctx, searchdto.AskInput{Query: query})
}
