package in

import (
	"context"

	reportsdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/dto"
	reportsin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/port/in"
)

type CLIHandler struct {
	usecase reportsin.Usecase
}

func NewCLIHandler(usecase reportsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Keywords(ctx context.Context) (reportsdto.KeywordReportOutput, error) {
	return h.usecase.Keywords(ctx)
}

func (h CLIHandler) Clustering(ctx context.Context) (reportsdto.ClusterReportOutput, error) {
	return h.usecase.Clustering(ctx)
}
