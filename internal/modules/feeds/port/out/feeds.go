package out

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/domain"
)

// API is the backend feed surface.
type API interface {
	List(ctx context.Context) ([]domain.Feed, error)
	Add(ctx context.Context, url string) (domain.Feed, error)
	Delete(ctx context.Context, id int) error
}
