// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"frontdesk/internal/domain/entity"
)

// HandshakeResult is the outcome of the one-shot session handshake.
type HandshakeResult struct {
	Authenticated bool
	Identity      *entity.Identity
}

// SessionUsecase owns the client-side session state: the handshake on
// startup, the current resolution, and sign-out. The session credential
// itself never passes through here; it lives in the transport's cookie jar.
type SessionUsecase interface {
	// Initialize runs the auth handshake exactly once per process start:
	// exchange the one-time token found in the location fragment, or
	// validate an existing session cookie. It never returns an error; any
	// failure resolves to the unauthenticated state.
	Initialize(ctx context.Context, loc entity.Location) HandshakeResult

	// Current returns the session state and, when authenticated, the
	// resolved identity.
	Current() (entity.SessionState, *entity.Identity)

	// SignOut invalidates the server-side session best-effort and
	// unconditionally transitions to unauthenticated, navigating home.
	SignOut(ctx context.Context)

	// SignInURL returns the external auth-provider URL to start sign-in.
	SignInURL() string
}
