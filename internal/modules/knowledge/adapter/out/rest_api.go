package out

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/domain"
	knowledgeout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/port/out"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/rest"
)

type wireDocument struct {
	ID           int    `json:"id"`
	FilePath     string `json:"file_path"`
	DocumentType string `json:"document_type"`
	Source       string `json:"source"`
	Tags         string `json:"tags"`
}

type RestAPI struct {
	client *rest.Client
}

func NewRestAPI(client *rest.Client) knowledgeout.API {
	return &RestAPI{client: client}
}

func (a *RestAPI) List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}

	var wire []wireDocument
	if err := a.client.Get(ctx, "/documents", query, &wire); err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(wire))
	for _, w := range wire {
		docs = append(docs, domain.Document{
			ID:           w.ID,
			FilePath:     w.FilePath,
			DocumentType: w.DocumentType,
			Source:       w.Source,
			Tags:         w.Tags,
		})
	}
	return docs, nil
}

func (a *RestAPI) Upload(ctx context.Context, upload domain.Upload) (string, error) {
	var out struct {
		Msg string `json:"msg"`
	}
	fields := map[string]string{"source": upload.Source, "tags": upload.Tags}
	if err := a.client.Upload(ctx, "/documents", upload.FilePath, fields, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

func (a *RestAPI) Update(ctx context.Context, id int, meta domain.Metadata) error {
	body := map[string]string{"source": meta.Source, "tags": meta.Tags}
	return a.client.Put(ctx, fmt.Sprintf("/documents/%d", id), body, nil)
}

func (a *RestAPI) Delete(ctx context.Context, id int) error {
	return a.client.Delete(ctx, fmt.Sprintf("/documents/%d", id))
}

func (a *RestAPI) BatchDelete(ctx context.Context, ids []int) (string, error) {
	var out struct {
		Msg string `json:"msg"`
	}
	if err := a.client.Post(ctx, "/documents/batch_delete", map[string][]int{"ids": ids}, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}
