package out

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/domain"
	searchout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/port/out"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/rest"
)

type RestAPI struct {
	client *rest.Client
}

func NewRestAPI(client *rest.Client) searchout.API {
	return &RestAPI{client: client}
}

func (a *RestAPI) Ask(ctx context.Context, query string) (domain.Result, error) {
	var out struct {
		Answer string `json:"answer"`
		Source string `json:"source"`
	}
	if err := a.client.Post(ctx, "/search", map[string]string{"query": query}, &out); err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Answer: out.Answer, Source: out.Source}, nil
}
