package out

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/domain"
)

type API interface {
	Keywords(ctx context.Context) (domain.KeywordReport, error)
	Clustering(ctx context.Context) (domain.ClusterReport, error)
}
