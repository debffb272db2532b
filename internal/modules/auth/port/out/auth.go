package out

import "context"

// TokenStore persists the opaque credential token. The session invariant
// hangs off this store: authenticated if and only if a token is present.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// API is the backend auth surface.
type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) (string, error)
}
