// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// SessionState describes the resolution state of the client-side session.
// The session credential itself is an opaque httpOnly cookie the client never
// reads; the only thing known locally is whether validation succeeded.
type SessionState int

const (
	// SessionLoading is the initial state while the handshake is in flight.
	SessionLoading SessionState = iota
	// SessionAuthenticated means an Identity has been resolved.
	SessionAuthenticated
	// SessionUnauthenticated is the definitive signed-out state.
	SessionUnauthenticated
)

// String returns a human-readable state name for logs.
func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionAuthenticated:
		return "authenticated"
	case SessionUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}
