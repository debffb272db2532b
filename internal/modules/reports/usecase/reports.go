package usecase

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/dto"
	reportsin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/port/in"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Keywords(ctx context.Context) (dto.KeywordReportOutput, error) {
	report, err := i.svc.Keywords(ctx)
	if err != nil {
		return dto.KeywordReportOutput{}, err
	}
	return dto.KeywordReportOutput{Keywords: report.Keywords}, nil
}

func (i *Interactor) Clustering(ctx context.Context) (dto.ClusterReportOutput, error) {
	report, err := i.svc.Clustering(ctx)
	if err != nil {
		return dto.ClusterReportOutput{}, err
	}
	return dto.ClusterReportOutput{Clusters: report.Clusters, Err: report.Err}, nil
}
