package usecase_test

import (
	"context"
	"testing"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/domain"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/dto"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/service"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/usecase"
)

type fakeAPI struct {
	feeds   []domain.Feed
	added   []string
	deleted []int
	err     error
}

func (f *fakeAPI) List(context.Context) ([]domain.Feed, error) { return f.feeds, f.err }

func (f *fakeAPI) Add(_ context.Context, url string) (domain.Feed, error) {
	f.added = append(f.added, url)
	if f.err != nil {
		return domain.Feed{}, f.err
	}
	return domain.Feed{ID: 11, URL: url}, nil
}

func (f *fakeAPI) Delete(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func TestListMapsFeeds(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{feeds: []domain.Feed{{ID: 1, URL: "https://a.example/rss"}, {ID: 2, URL: "https://b.example/rss"}}}
	uc := usecase.NewInteractor(service.NewFeedService(api))

	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].URL != "https://a.example/rss" || out[1].ID != 2 {
		t.Fatalf("unexpected feeds: %+v", out)
	}
}

func TestAddRequiresURLButDoesNotValidateFormat(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewFeedService(api))

	if _, err := uc.Add(context.Background(), dto.AddInput{URL: "  "}); err == nil {
		t.Fatalf("blank url must fail")
	}
	if len(api.added) != 0 {
		t.Fatalf("blank url must not reach the API")
	}

	// Anything non-empty goes through as-is; the server judges it.
	out, err := uc.Add(context.Background(), dto.AddInput{URL: "not a url"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.ID != 11 || out.URL != "not a url" || api.added[0] != "not a url" {
		t.Fatalf("unexpected add result: %+v added=%+v", out, api.added)
	}
}

func TestDeletePassesExactID(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewFeedService(api))

	if err := uc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != 3 {
		t.Fatalf("unexpected deletes: %+v", api.deleted)
	}
}
