// Package service defines the interfaces for external collaborators the
// application depends on: the auth provider gateway and the presentation
// hooks the hosting shell supplies.
package service

import (
	"context"

	"frontdesk/internal/domain/entity"
)

// AuthGateway defines the session endpoints of the backend. All calls are
// credential-bearing so the server can set and read the session cookie.
type AuthGateway interface {
	// ExchangeSession trades a one-time exchange token for a durable
	// session. On success the server sets the session cookie and returns
	// the resolved Identity.
	ExchangeSession(ctx context.Context, token string) (*entity.Identity, error)

	// FetchIdentity validates an existing session cookie. A non-2xx
	// response means "not signed in" and is reported as an error the
	// handshake treats silently.
	FetchIdentity(ctx context.Context) (*entity.Identity, error)

	// Logout invalidates the server-side session. Best effort: callers
	// transition locally regardless of the result.
	Logout(ctx context.Context) error

	// SignInURL builds the external auth-provider URL carrying the
	// dashboard redirect. Invoked, never implemented, by this client.
	SignInURL() string
}
