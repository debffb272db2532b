package service

import (
	"context"
	"errors"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/domain"
	authout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/port/out"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
)

type AuthService struct {
	store authout.TokenStore
	api   authout.API
}

func NewAuthService(store authout.TokenStore, api authout.API) *AuthService {
	return &AuthService{store: store, api: api}
}

// Login exchanges credentials for a token, persists it, and returns the
// authenticated session. The token is only written on success.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if err := creds.Validate(); err != nil {
		return domain.Session{}, err
	}
	token, err := s.api.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return domain.Session{}, err
	}
	if err := s.store.Save(ctx, token); err != nil {
		return domain.Session{}, err
	}
	return domain.Session{}.Authenticate(), nil
}

// Register creates an account and returns the server message. It never
// stores a token; the user signs in afterwards.
func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	return s.api.Register(ctx, creds.Username, creds.Password)
}

func (s *AuthService) Logout(ctx context.Context) (domain.Session, error) {
	if err := s.store.Clear(ctx); err != nil {
		return domain.Session{}, err
	}
	return domain.Session{}, nil
}

// Restore rebuilds the session from the persisted token at startup. A
// present token is trusted without a validation call.
func (s *AuthService) Restore(ctx context.Context) (domain.Session, error) {
	_, err := s.store.Load(ctx)
	if errors.Is(err, apperrors.ErrNoToken) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{}.Authenticate(), nil
}
