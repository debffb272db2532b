package in

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.RegisterOutput, error)
	Logout(ctx context.Context) (dto.SessionOutput, error)
	Restore(ctx context.Context) (dto.SessionOutput, error)
}
