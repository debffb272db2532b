package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	authout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/adapter/out"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := authout.NewFileTokenStore(filepath.Join(t.TempDir(), "state", "token.json"))
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("expected ErrNoToken before save, got %v", err)
	}
	if token, err := store.Token(ctx); err != nil || token != "" {
		t.Fatalf("token source must report empty token without error, got %q err=%v", token, err)
	}

	if err := store.Save(ctx, "abc123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := store.Load(ctx)
	if err != nil || token != "abc123" {
		t.Fatalf("load after save: %q err=%v", token, err)
	}
	if token, err := store.Token(ctx); err != nil || token != "abc123" {
		t.Fatalf("token source after save: %q err=%v", token, err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("expected ErrNoToken after clear, got %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clearing twice must be a no-op, got %v", err)
	}
}
