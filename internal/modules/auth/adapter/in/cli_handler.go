package in

import (
	"context"

	authdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/dto"
	authin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, username, password string) (authdto.SessionOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Username: username, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, username, password string) (authdto.RegisterOutput, error) {
	return h.usecase.Register(ctx, authdto.RegisterInput{Username: username, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Restore(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Restore(ctx)
}
