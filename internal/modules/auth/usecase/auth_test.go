package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	authout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/adapter/out"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/dto"
	authin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/port/in"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/service"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/usecase"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
)

type loginCall struct{ username, password string }

type fakeAPI struct {
	loginCalls    []loginCall
	registerCalls []loginCall
	token         string
	registerMsg   string
	err           error
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (string, error) {
	f.loginCalls = append(f.loginCalls, loginCall{username, password})
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeAPI) Register(_ context.Context, username, password string) (string, error) {
	f.registerCalls = append(f.registerCalls, loginCall{username, password})
	if f.err != nil {
		return "", f.err
	}
	return f.registerMsg, nil
}

func newUsecase(t *testing.T, api *fakeAPI) (*authout.FileTokenStore, func() context.Context, authin.Usecase) {
	t.Helper()
	store := authout.NewFileTokenStore(filepath.Join(t.TempDir(), "token.json"))
	uc := usecase.NewInteractor(service.NewAuthService(store, api))
	return store, context.Background, uc
}

func TestLoginPersistsTokenAndAuthenticates(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{token: "test_token"}
	store, ctx, uc := newUsecase(t, api)

	out, err := uc.Login(ctx(), dto.LoginInput{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !out.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if len(api.loginCalls) != 1 || api.loginCalls[0] != (loginCall{"alice", "secret"}) {
		t.Fatalf("expected one login call with literal credentials, got %+v", api.loginCalls)
	}
	token, err := store.Load(ctx())
	if err != nil || token != "test_token" {
		t.Fatalf("expected persisted token, got %q err=%v", token, err)
	}
}

func TestLoginFailureLeavesNoToken(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{err: &apperrors.APIError{StatusCode: 401, Msg: "Bad username or password"}}
	store, ctx, uc := newUsecase(t, api)

	_, err := uc.Login(ctx(), dto.LoginInput{Username: "alice", Password: "wrong"})
	msg, ok := apperrors.ServerMessage(err)
	if !ok || msg != "Bad username or password" {
		t.Fatalf("expected verbatim server message, got %v", err)
	}
	if _, err := store.Load(ctx()); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("token must not be stored on failed login, got %v", err)
	}
}

func TestLoginValidatesFormWithoutNetworkCall(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{token: "t"}
	_, ctx, uc := newUsecase(t, api)

	if _, err := uc.Login(ctx(), dto.LoginInput{Username: "", Password: "pw"}); err == nil {
		t.Fatalf("empty username must fail")
	}
	if len(api.loginCalls) != 0 {
		t.Fatalf("form validation failure must not reach the API")
	}
}

func TestRegisterReturnsServerMessageAndDoesNotLogin(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{registerMsg: "User created successfully"}
	store, ctx, uc := newUsecase(t, api)

	out, err := uc.Register(ctx(), dto.RegisterInput{Username: "bob", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out.Msg != "User created successfully" {
		t.Fatalf("expected verbatim server message, got %q", out.Msg)
	}
	if _, err := store.Load(ctx()); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("register must not store a token")
	}

	api.err = &apperrors.APIError{StatusCode: 409, Msg: "Username already exists"}
	_, err = uc.Register(ctx(), dto.RegisterInput{Username: "bob", Password: "pw"})
	if msg, ok := apperrors.ServerMessage(err); !ok || msg != "Username already exists" {
		t.Fatalf("expected verbatim failure message, got %v", err)
	}
}

func TestRestoreTrustsStoredTokenAndLogoutClearsIt(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{token: "test_token"}
	store, ctx, uc := newUsecase(t, api)

	// No token yet: anonymous session, no API traffic.
	out, err := uc.Restore(ctx())
	if err != nil || out.Authenticated {
		t.Fatalf("expected anonymous session, got %+v err=%v", out, err)
	}

	if err := store.Save(ctx(), "stored_token"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	out, err = uc.Restore(ctx())
	if err != nil || !out.Authenticated {
		t.Fatalf("stored token must restore an authenticated session, got %+v err=%v", out, err)
	}
	if len(api.loginCalls) != 0 {
		t.Fatalf("restore must not call the backend")
	}

	out, err = uc.Logout(ctx())
	if err != nil || out.Authenticated {
		t.Fatalf("logout must clear the session, got %+v err=%v", out, err)
	}
	if _, err := store.Load(ctx()); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("logout must remove the persisted token")
	}
}
