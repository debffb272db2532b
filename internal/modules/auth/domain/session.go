package domain

import (
	"fmt"
	"strings"
)

// Session is the client-held belief that the user is authenticated, backed
// by a persisted opaque token. It is an immutable value with two pure
// transitions; the root UI model threads it through explicitly instead of
// keeping a package-level flag.
type Session struct {
	Authenticated bool
}

func (s Session) Authenticate() Session { return Session{Authenticated: true} }

func (s Session) Clear() Session { return Session{} }

// Credentials are the login/register form inputs. Both fields are required
// and checked for non-emptiness only; the server owns everything else.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
