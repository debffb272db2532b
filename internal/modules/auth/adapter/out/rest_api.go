package out

import (
	"context"

	authout "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/port/out"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/rest"
)

type RestAPI struct {
	client *rest.Client
}

func NewRestAPI(client *rest.Client) authout.API {
	return &RestAPI{client: client}
}

func (a *RestAPI) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := a.client.Post(ctx, "/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (a *RestAPI) Register(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Msg string `json:"msg"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := a.client.Post(ctx, "/auth/register", body, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}
