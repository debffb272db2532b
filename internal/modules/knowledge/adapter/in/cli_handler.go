package in

import (
	"context"

	knowledgedto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/dto"
	knowledgein "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/port/in"
)

type CLIHandler struct {
	usecase knowledgein.Usecase
}

func NewCLIHandler(usecase knowledgein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, docType, startDate, endDate string) ([]knowledgedto.DocumentOutput, error) {
	return h.usecase.List(ctx, knowledgedto.ListInput{Type: docType, StartDate: startDate, EndDate: endDate})
}

func (h CLIHandler) Upload(ctx context.Context, filePath, source, tags string) (knowledgedto.UploadOutput, error) {
	return h.usecase.Upload(ctx, knowledgedto.UploadInput{FilePath: filePath, Source: source, Tags: tags})
}

func (h CLIHandler) Update(ctx context.Context, id int, source, tags string) error {
	return h.usecase.Update(ctx, knowledgedto.UpdateInput{ID: id, Source: source, Tags: tags})
}

func (h CLIHandler) Delete(ctx context.Context, id int) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) BatchDelete(ctx context.Context, ids []int) (knowledgedto.BatchDeleteOutput, error) {
	return h.usecase.BatchDelete(ctx, knowledgedto.BatchDeleteInput{IDs: ids})
}
