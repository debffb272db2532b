package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/domain"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/dto"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/service"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/usecase"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
)

type fakeAPI struct {
	docs        []domain.Document
	listFilters []domain.ListFilter
	uploads     []domain.Upload
	updates     []struct {
		id   int
		meta domain.Metadata
	}
	deletes      []int
	batchDeletes [][]int
	uploadMsg    string
	err          error
}

func (f *fakeAPI) List(_ context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	f.listFilters = append(f.listFilters, filter)
	return f.docs, f.err
}

func (f *fakeAPI) Upload(_ context.Context, upload domain.Upload) (string, error) {
	f.uploads = append(f.uploads, upload)
	return f.uploadMsg, f.err
}

func (f *fakeAPI) Update(_ context.Context, id int, meta domain.Metadata) error {
	f.updates = append(f.updates, struct {
		id   int
		meta domain.Metadata
	}{id, meta})
	return f.err
}

func (f *fakeAPI) Delete(_ context.Context, id int) error {
	f.deletes = append(f.deletes, id)
	return f.err
}

func (f *fakeAPI) BatchDelete(_ context.Context, ids []int) (string, error) {
	f.batchDeletes = append(f.batchDeletes, ids)
	return "Successfully deleted 2 documents.", f.err
}

func TestListMapsDocumentsAndFilter(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{docs: []domain.Document{
		{ID: 7, FilePath: "uploads/a.pdf", DocumentType: "pdf", Source: "Reuters", Tags: "tech"},
		{ID: 9, FilePath: "uploads/b.txt", DocumentType: "txt"},
	}}
	uc := usecase.NewInteractor(service.NewKnowledgeService(api))

	out, err := uc.List(context.Background(), dto.ListInput{Type: "pdf", StartDate: "2026-01-01"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].ID != 7 || out[0].FilePath != "uploads/a.pdf" || out[1].DocumentType != "txt" {
		t.Fatalf("unexpected mapping: %+v", out)
	}
	if len(api.listFilters) != 1 || api.listFilters[0] != (domain.ListFilter{Type: "pdf", StartDate: "2026-01-01"}) {
		t.Fatalf("filter not passed through: %+v", api.listFilters)
	}
}

func TestUploadWithoutFileMakesNoNetworkCall(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewKnowledgeService(api))

	_, err := uc.Upload(context.Background(), dto.UploadInput{Source: "Reuters", Tags: "tech"})
	if !errors.Is(err, apperrors.ErrFileRequired) {
		t.Fatalf("expected ErrFileRequired, got %v", err)
	}
	if len(api.uploads) != 0 {
		t.Fatalf("upload without a file must issue zero API calls, got %d", len(api.uploads))
	}
}

func TestUploadPassesDraftAndReturnsServerMessage(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{uploadMsg: "File uploaded and processed successfully"}
	uc := usecase.NewInteractor(service.NewKnowledgeService(api))

	out, err := uc.Upload(context.Background(), dto.UploadInput{FilePath: "/tmp/news.txt", Source: "Reuters", Tags: "tech, ai"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if out.Msg != "File uploaded and processed successfully" {
		t.Fatalf("expected verbatim server message, got %q", out.Msg)
	}
	want := domain.Upload{FilePath: "/tmp/news.txt", Source: "Reuters", Tags: "tech, ai"}
	if len(api.uploads) != 1 || api.uploads[0] != want {
		t.Fatalf("unexpected upload payload: %+v", api.uploads)
	}
}

func TestUpdateSendsExactlySourceAndTagsForID(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewKnowledgeService(api))

	if err := uc.Update(context.Background(), dto.UpdateInput{ID: 42, Source: "BBC", Tags: "world"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(api.updates) != 1 || api.updates[0].id != 42 {
		t.Fatalf("unexpected update calls: %+v", api.updates)
	}
	if api.updates[0].meta != (domain.Metadata{Source: "BBC", Tags: "world"}) {
		t.Fatalf("unexpected update payload: %+v", api.updates[0].meta)
	}
}

func TestDeleteIsIssuedPerCallEvenForSameID(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewKnowledgeService(api))

	if err := uc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if len(api.deletes) != 2 || api.deletes[0] != 5 || api.deletes[1] != 5 {
		t.Fatalf("expected two deletes for the same id, got %+v", api.deletes)
	}
}

func TestBatchDeleteRequiresIDs(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewKnowledgeService(api))

	if _, err := uc.BatchDelete(context.Background(), dto.BatchDeleteInput{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	out, err := uc.BatchDelete(context.Background(), dto.BatchDeleteInput{IDs: []int{1, 2}})
	if err != nil {
		t.Fatalf("batch delete: %v", err)
	}
	if out.Msg == "" || len(api.batchDeletes) != 1 || len(api.batchDeletes[0]) != 2 {
		t.Fatalf("unexpected batch delete: %+v msg=%q", api.batchDeletes, out.Msg)
	}
}
