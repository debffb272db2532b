package usecase

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/domain"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/dto"
	knowledgein "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/port/in"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/service"
)

type Interactor struct {
	svc *service.KnowledgeService
}

func NewInteractor(svc *service.KnowledgeService) knowledgein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.DocumentOutput, error) {
	docs, err := i.svc.List(ctx, domain.ListFilter{Type: input.Type, StartDate: input.StartDate, EndDate: input.EndDate})
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentOutput, 0, len(docs))
	for _, doc := range docs {
		out = append(out, dto.DocumentOutput{
			ID:           doc.ID,
			FilePath:     doc.FilePath,
			DocumentType: doc.DocumentType,
			Source:       doc.Source,
			Tags:         doc.Tags,
		})
	}
	return out, nil
}

func (i *Interactor) Upload(ctx context.Context, input dto.UploadInput) (dto.UploadOutput, error) {
	msg, err := i.svc.Upload(ctx, domain.Upload{FilePath: input.FilePath, Source: input.Source, Tags: input.Tags})
	if err != nil {
		return dto.UploadOutput{}, err
	}
	return dto.UploadOutput{Msg: msg}, nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) error {
	return i.svc.Update(ctx, input.ID, domain.Metadata{Source: input.Source, Tags: input.Tags})
}

func (i *Interactor) Delete(ctx context.Context, id int) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) BatchDelete(ctx context.Context, input dto.BatchDeleteInput) (dto.BatchDeleteOutput, error) {
	msg, err := i.svc.BatchDelete(ctx, input.IDs)
	if err != nil {
		return dto.BatchDeleteOutput{}, err
	}
	return dto.BatchDeleteOutput{Msg: msg}, nil
}
