package domain

// Route identifies a top-level screen.
type Route string

const (
	RouteAuth      Route = "/auth"
	RouteDashboard Route = "/dashboard"
)

// Resolve is the route guard: a pure function of the requested route and the
// session. Unauthenticated requests for the dashboard land on the auth
// screen, authenticated requests for the auth screen land on the dashboard,
// and anything unknown resolves by session state.
func Resolve(requested Route, session Session) Route {
	switch requested {
	case RouteAuth:
		if session.Authenticated {
			return RouteDashboard
		}
		return RouteAuth
	case RouteDashboard:
		if !session.Authenticated {
			return RouteAuth
		}
		return RouteDashboard
	default:
		if session.Authenticated {
			return RouteDashboard
		}
		return RouteAuth
	}
}
