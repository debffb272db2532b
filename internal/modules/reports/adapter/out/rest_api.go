package out

import (
	"context"
	"encoding/json"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/domain"
	reportsout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/port/out"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/rest"
)

type RestAPI struct {
	client *rest.Client
}

func NewRestAPI(client *rest.Client) reportsout.API {
	return &RestAPI{client: client}
}

func (a *RestAPI) Keywords(ctx context.Context) (domain.KeywordReport, error) {
	var out struct {
		TopKeywords []string `json:"top_keywords"`
	}
	if err := a.client.Get(ctx, "/report/keywords", nil, &out); err != nil {
		return domain.KeywordReport{}, err
	}
	return domain.KeywordReport{Keywords: out.TopKeywords}, nil
}

// Clustering returns a 200 in both shapes: a label-to-terms mapping on
// success, or {"error": "..."} when the corpus is too small to cluster.
func (a *RestAPI) Clustering(ctx context.Context) (domain.ClusterReport, error) {
	var raw map[string]json.RawMessage
	if err := a.client.Get(ctx, "/report/clustering", nil, &raw); err != nil {
		return domain.ClusterReport{}, err
	}
	if msg, ok := raw["error"]; ok {
		var text string
		if err := json.Unmarshal(msg, &text); err == nil {
			return domain.ClusterReport{Err: text}, nil
		}
	}
	clusters := make(map[string][]string, len(raw))
	for label, terms := range raw {
		var list []string
		if err := json.Unmarshal(terms, &list); err != nil {
			return domain.ClusterReport{}, err
		}
		clusters[label] = list
	}
	return domain.ClusterReport{Clusters: clusters}, nil
}
