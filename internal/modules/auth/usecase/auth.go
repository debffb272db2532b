package usecase

import (
	"context"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/domain"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/dto"
	authin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/port/in"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/service"
)

type Interactor struct {
	svc *service.AuthService
}

func NewInteractor(svc *service.AuthService) authin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	session, err := i.svc.Login(ctx, domain.Credentials{Username: input.Username, Password: input.Password})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Authenticated: session.Authenticated}, nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.RegisterOutput, error) {
	msg, err := i.svc.Register(ctx, domain.Credentials{Username: input.Username, Password: input.Password})
	if err != nil {
		return dto.RegisterOutput{}, err
	}
	return dto.RegisterOutput{Msg: msg}, nil
}

func (i *Interactor) Logout(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Logout(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Authenticated: session.Authenticated}, nil
}

func (i *Interactor) Restore(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Restore(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Authenticated: session.Authenticated}, nil
}
