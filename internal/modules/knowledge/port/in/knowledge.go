package in

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.DocumentOutput, error)
	Upload(ctx context.Context, input dto.UploadInput) (dto.UploadOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) error
	Delete(ctx context.Context, id int) error
	BatchDelete(ctx context.Context, input dto.BatchDeleteInput) (dto.BatchDeleteOutput, error)
}
