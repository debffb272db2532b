package service

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/domain"
	reportsout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/port/out"
)

type ReportService struct {
	api reportsout.API
}

func NewReportService(api reportsout.API) *ReportService {
	return &ReportService{api: api}
}

func (s *ReportService) Keywords(ctx context.Context) (domain.KeywordReport, error) {
	return s.api.Keywords(ctx)
}

func (s *ReportService) Clustering(ctx context.Context) (domain.ClusterReport, error) {
	return s.api.Clustering(ctx)
}
