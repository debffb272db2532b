package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/rest"
)

type staticTokens struct{ token string }

func (s staticTokens) Token(context.Context) (string, error) { return s.token, nil }

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	t.Parallel()
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := rest.NewClient(server.URL, staticTokens{token: "test_token"})
	if err := client.Get(context.Background(), "/documents", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer test_token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}

	client = rest.NewClient(server.URL, staticTokens{})
	if err := client.Get(context.Background(), "/documents", nil, nil); err != nil {
		t.Fatalf("get without token: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header without token, got %q", gotAuth)
	}
}

func TestErrorPayloadBecomesAPIErrorVerbatim(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want string
	}{
		{"msg field", `{"msg":"Bad username or password"}`, "Bad username or password"},
		{"error field", `{"error":"Feed not found or permission denied"}`, "Feed not found or permission denied"},
		{"no body", ``, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := rest.NewClient(server.URL, nil)
			err := client.Post(context.Background(), "/auth/login", map[string]string{}, nil)
			var apiErr *apperrors.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Msg != tc.want {
				t.Fatalf("unexpected api error: %+v", apiErr)
			}
		})
	}
}

func TestUploadSendsMultipartFileAndFields(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	filePath := filepath.Join(dir, "news.txt")
	if err := os.WriteFile(filePath, []byte("breaking news"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var gotFile, gotSource, gotTags string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			defer file.Close()
			gotFile = header.Filename
		}
		gotSource = r.FormValue("source")
		gotTags = r.FormValue("tags")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"msg":"File uploaded and processed successfully"}`))
	}))
	defer server.Close()

	client := rest.NewClient(server.URL, staticTokens{token: "t"})
	var out struct {
		Msg string `json:"msg"`
	}
	err := client.Upload(context.Background(), "/documents", filePath, map[string]string{
		"source": "Reuters",
		"tags":   "tech, ai",
	}, &out)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotFile != "news.txt" || gotSource != "Reuters" || gotTags != "tech, ai" {
		t.Fatalf("unexpected form data: file=%q source=%q tags=%q", gotFile, gotSource, gotTags)
	}
	if out.Msg != "File uploaded and processed successfully" {
		t.Fatalf("unexpected response msg: %q", out.Msg)
	}
}

func TestUploadFailsWhenFileMissing(t *testing.T) {
	t.Parallel()
	client := rest.NewClient("http://unused.invalid", nil)
	err := client.Upload(context.Background(), "/documents", filepath.Join(t.TempDir(), "absent.txt"), nil, nil)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
