package usecase_test

import (
	"context"
	"testing"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/domain"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/dto"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/service"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/usecase"
)

type fakeAPI struct {
	queries []string
	result  domain.Result
	err     error
}

func (f *fakeAPI) Ask(_ context.Context, query string) (domain.Result, error) {
	f.queries = append(f.queries, query)
	return f.result, f.err
}

func TestAskPostsLiteralQueryAndMapsResult(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{result: domain.Result{Answer: "42", Source: "deep-thought.txt"}}
	uc := usecase.NewInteractor(service.NewSearchService(api))

	out, err := uc.Ask(context.Background(), dto.AskInput{Query: "what is the answer?"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if out.Answer != "42" || out.Source != "deep-thought.txt" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if len(api.queries) != 1 || api.queries[0] != "what is the answer?" {
		t.Fatalf("query must pass through literally, got %+v", api.queries)
	}
}

func TestAskRequiresQuery(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewSearchService(api))

	if _, err := uc.Ask(context.Background(), dto.AskInput{Query: " "}); err == nil {
		t.Fatalf("blank query must fail")
	}
	if len(api.queries) != 0 {
		t.Fatalf("blank query must not reach the API")
	}
}
