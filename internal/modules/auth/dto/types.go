package dto

type LoginInput struct {
	Username string
	Password string
}

type RegisterInput struct {
	Username string
	Password string
}

type SessionOutput struct {
	Authenticated bool
}

type RegisterOutput struct {
	Msg string
}
