package out

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/domain"
)

// API is the backend search surface.
type API interface {
	Ask(ctx context.Context, query string) (domain.Result, error)
}
