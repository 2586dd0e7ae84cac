// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"frontdesk/internal/domain/entity"
	"frontdesk/internal/domain/service"
	"frontdesk/internal/usecase"
)

// sessionTokenMarker locates the one-time exchange token the auth provider
// delivers in the redirect fragment.
const sessionTokenMarker = "session_id="

// sessionService implements the SessionUsecase interface. The state slot is
// the single source of truth for "signed in or not"; Initialize and SignOut
// are its only writers.
type sessionService struct {
	gateway   service.AuthGateway
	navigator service.Navigator
	logger    *slog.Logger

	mu       sync.Mutex
	state    entity.SessionState
	identity *entity.Identity
	resolved bool
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	gateway service.AuthGateway,
	navigator service.Navigator,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		gateway:   gateway,
		navigator: navigator,
		logger:    logger,
		state:     entity.SessionLoading,
	}
}

// Initialize runs the auth handshake. It resolves the state slot exactly
// once: repeat calls return the already-resolved result without touching the
// network.
func (srv *sessionService) Initialize(ctx context.Context, loc entity.Location) usecase.HandshakeResult {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.resolved {
		return srv.resultLocked()
	}

	// 1. Look for a one-time exchange token in the redirect fragment.
	token := extractSessionToken(loc.Fragment)

	if token != "" {
		// 2. Trade the token for the session cookie.
		identity, err := srv.gateway.ExchangeSession(ctx, token)
		if err != nil {
			srv.logger.Warn("session token exchange failed", slog.Any("error", err))
			srv.resolveLocked(entity.SessionUnauthenticated, nil)
		} else {
			srv.resolveLocked(entity.SessionAuthenticated, identity)
		}

		// 3. Strip the token from the visible address either way, without
		// adding a history entry.
		srv.navigator.Replace(loc.WithoutFragment())

		return srv.resultLocked()
	}

	// 4. No token: validate an existing session cookie. Any failure means
	// signed out; a 401 here is the normal first-visit outcome, not an error.
	identity, err := srv.gateway.FetchIdentity(ctx)
	if err != nil {
		srv.logger.Debug("no existing session", slog.Any("error", err))
		srv.resolveLocked(entity.SessionUnauthenticated, nil)
	} else {
		srv.resolveLocked(entity.SessionAuthenticated, identity)
	}

	return srv.resultLocked()
}

// Current returns the session state and the resolved identity snapshot.
func (srv *sessionService) Current() (entity.SessionState, *entity.Identity) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state, srv.identity
}

// SignOut invalidates the server-side session best-effort. The local
// transition and the navigation home happen even when the call fails, so the
// user is never stuck signed in.
func (srv *sessionService) SignOut(ctx context.Context) {
	if err := srv.gateway.Logout(ctx); err != nil {
		srv.logger.Warn("server logout failed", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.resolveLocked(entity.SessionUnauthenticated, nil)
	srv.mu.Unlock()

	srv.navigator.Navigate("/")
}

// SignInURL returns the external auth-provider URL.
func (srv *sessionService) SignInURL() string {
	return srv.gateway.SignInURL()
}

func (srv *sessionService) resolveLocked(state entity.SessionState, identity *entity.Identity) {
	srv.state = state
	srv.identity = identity
	srv.resolved = true
	srv.logger.Info("session resolved", slog.String("state", state.String()))
}

func (srv *sessionService) resultLocked() usecase.HandshakeResult {
	return usecase.HandshakeResult{
		Authenticated: srv.state == entity.SessionAuthenticated,
		Identity:      srv.identity,
	}
}

// extractSessionToken pulls the exchange token out of a redirect fragment.
// The token runs from the marker to the next "&" or the end of the fragment;
// an empty token is treated as absent.
func extractSessionToken(fragment string) string {
	idx := strings.Index(fragment, sessionTokenMarker)
	if idx < 0 {
		return ""
	}

	token := fragment[idx+len(sessionTokenMarker):]
	if amp := strings.Index(token, "&"); amp >= 0 {
		token = token[:amp]
	}

	return token
}
