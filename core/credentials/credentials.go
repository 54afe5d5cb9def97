// Package credentials names the distinct credential scopes this service
// juggles. The session scope is our own JWT, minted per user; the settings
// scope is a JWT issued by the settings API's login flow; the bridge scope
// is a long-lived per-user API key. Keeping the scopes explicit stops one
// token from quietly standing in for another.
package credentials

import "context"

type Scope string

const (
	ScopeSession  Scope = "session"
	ScopeSettings Scope = "settings"
	ScopeBridge   Scope = "bridge"
)

// TokenSource yields a credential for a named scope. Implementations decide
// how the token is obtained and refreshed; callers only name the scope they
// need.
type TokenSource interface {
	Token(ctx context.Context, scope Scope) (string, error)
}
