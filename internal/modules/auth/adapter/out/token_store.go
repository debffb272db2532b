package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	authout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/port/out"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
)

type tokenFile struct {
	AccessToken string `json:"access_token"`
}

// FileTokenStore persists the credential token as a small JSON file in the
// state dir. It doubles as the REST client's token source, so the bearer
// header always reflects exactly what is on disk.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(tokenFile{AccessToken: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Load(_ context.Context) (string, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrNoToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	var file tokenFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	if file.AccessToken == "" {
		return "", apperrors.ErrNoToken
	}
	return file.AccessToken, nil
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Token implements rest.TokenSource. A missing token is not an error here;
// requests simply go out without a bearer header.
func (s *FileTokenStore) Token(ctx context.Context) (string, error) {
	token, err := s.Load(ctx)
	if errors.Is(err, apperrors.ErrNoToken) {
		return "", nil
	}
	return token, err
}

var _ authout.TokenStore = (*FileTokenStore)(nil)
