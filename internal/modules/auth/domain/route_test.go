package domain_test

import (
	"testing"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/domain"
)

func TestRouteGuard(t *testing.T) {
	t.Parallel()
	authed := domain.Session{}.Authenticate()
	anon := domain.Session{}

	cases := []struct {
		name      string
		requested domain.Route
		session   domain.Session
		want      domain.Route
	}{
		{"dashboard stays dashboard when authenticated", domain.RouteDashboard, authed, domain.RouteDashboard},
		{"dashboard redirects to auth when anonymous", domain.RouteDashboard, anon, domain.RouteAuth},
		{"auth redirects to dashboard when authenticated", domain.RouteAuth, authed, domain.RouteDashboard},
		{"auth stays auth when anonymous", domain.RouteAuth, anon, domain.RouteAuth},
		{"unknown resolves to dashboard when authenticated", domain.Route("/nope"), authed, domain.RouteDashboard},
		{"unknown resolves to auth when anonymous", domain.Route("/nope"), anon, domain.RouteAuth},
	}
	for _, tc := range cases {
		if got := domain.Resolve(tc.requested, tc.session); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSessionTransitionsArePure(t *testing.T) {
	t.Parallel()
	s := domain.Session{}
	authed := s.Authenticate()
	if s.Authenticated {
		t.Fatalf("authenticate must not mutate the receiver")
	}
	if !authed.Authenticated {
		t.Fatalf("authenticate must produce an authenticated session")
	}
	if cleared := authed.Clear(); cleared.Authenticated {
		t.Fatalf("clear must produce an anonymous session")
	}
}

func TestCredentialsValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Credentials{Username: "alice", Password: "pw"}).Validate(); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if err := (domain.Credentials{Username: " ", Password: "pw"}).Validate(); err == nil {
		t.Fatalf("blank username must fail")
	}
	if err := (domain.Credentials{Username: "alice"}).Validate(); err == nil {
		t.Fatalf("missing password must fail")
	}
}
