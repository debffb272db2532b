package out

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/domain"
)

// API is the backend document surface.
type API interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error)
	Upload(ctx context.Context, upload domain.Upload) (string, error)
	Update(ctx context.Context, id int, meta domain.Metadata) error
	Delete(ctx context.Context, id int) error
	BatchDelete(ctx context.Context, ids []int) (string, error)
}
