package out

import (
	"context"
	"fmt"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/domain"
	feedsout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/port/out"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/rest"
)

type wireFeed struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

type RestAPI struct {
	client *rest.Client
}

func NewRestAPI(client *rest.Client) feedsout.API {
	return &RestAPI{client: client}
}

func (a *RestAPI) List(ctx context.Context) ([]domain.Feed, error) {
	var wire []wireFeed
	if err := a.client.Get(ctx, "/feeds", nil, &wire); err != nil {
		return nil, err
	}
	feeds := make([]domain.Feed, 0, len(wire))
	for _, w := range wire {
		feeds = append(feeds, domain.Feed{ID: w.ID, URL: w.URL})
	}
	return feeds, nil
}

func (a *RestAPI) Add(ctx context.Context, url string) (domain.Feed, error) {
	var out wireFeed
	if err := a.client.Post(ctx, "/feeds", map[string]string{"url": url}, &out); err != nil {
		return domain.Feed{}, err
	}
	return domain.Feed{ID: out.ID, URL: out.URL}, nil
}

func (a *RestAPI) Delete(ctx context.Context, id int) error {
	return a.client.Delete(ctx, fmt.Sprintf("/feeds/%d", id))
}
