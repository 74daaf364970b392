// Package navigation decides whether a destination is reachable or visible
// for the current session's role.
package navigation

import "github.com/workzen/hrms-client/session"

// Decision is the outcome of resolving a navigation attempt.
type Decision int

const (
	// DecisionRender allows the destination.
	DecisionRender Decision = iota
	// DecisionRedirectLogin sends an unauthenticated session to the login
	// screen. The originally requested destination is not remembered across
	// the redirect; after login the user lands on the default screen.
	DecisionRedirectLogin
	// DecisionNotFound hides the destination. A role outside a route's
	// allow-set gets the same answer as a nonexistent path, so probing for
	// gated routes reveals nothing.
	DecisionNotFound
)

func (d Decision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionNotFound:
		return "not-found"
	}
	return "unknown"
}

// Route is a navigable destination. An empty AllowedRoles means any
// authenticated session may view it; Public routes need no session at all.
type Route struct {
	Path         string
	Name         string
	Public       bool
	AllowedRoles []session.Role
}

// MenuItem is an entry in the navigation menu with an optional allow-set.
type MenuItem struct {
	Name         string
	Path         string
	AllowedRoles []session.Role
}

// Resolver evaluates navigation attempts against the current session state.
type Resolver struct {
	store  *session.Store
	routes map[string]Route
}

// NewResolver builds a resolver over the given route table.
func NewResolver(store *session.Store, routes []Route) *Resolver {
	table := make(map[string]Route, len(routes))
	for _, route := range routes {
		table[route.Path] = route
	}
	return &Resolver{store: store, routes: table}
}

// Resolve decides what happens when the current session navigates to path.
// It reads session state fresh on every call; nothing is cached across
// logins.
func (r *Resolver) Resolve(path string) Decision {
	route, ok := r.routes[path]
	if !ok {
		return DecisionNotFound
	}
	if route.Public {
		return DecisionRender
	}
	if !r.store.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if len(route.AllowedRoles) == 0 {
		return DecisionRender
	}
	if r.store.HasRole(route.AllowedRoles...) {
		return DecisionRender
	}
	return DecisionNotFound
}

// VisibleMenu filters menu entries down to those the current session may
// see: an entry shows iff its allow-set is empty or the session's role is a
// member. Evaluated fresh from store state on every call.
func VisibleMenu(store *session.Store, items []MenuItem) []MenuItem {
	visible := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if len(item.AllowedRoles) == 0 || store.HasRole(item.AllowedRoles...) {
			visible = append(visible, item)
		}
	}
	return visible
}
