package in

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/dto"
)

type Usecase interface {
	Keywords(ctx context.Context) (dto.KeywordReportOutput, error)
	Clustering(ctx context.Context) (dto.ClusterReportOutput, error)
}
