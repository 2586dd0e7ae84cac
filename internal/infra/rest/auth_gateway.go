package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"frontdesk/config"
	"frontdesk/internal/domain/entity"
	"frontdesk/internal/domain/service"

	"github.com/pkg/errors"
)

const headerSessionID = "X-Session-ID"

// authGateway implements service.AuthGateway against the backend's
// session-cookie auth endpoints.
type authGateway struct {
	client *Client
	auth   *config.AuthConfig
	logger *slog.Logger
}

// NewAuthGateway is the constructor for authGateway.
func NewAuthGateway(client *Client, cfg *config.Config, logger *slog.Logger) service.AuthGateway {
	return &authGateway{
		client: client,
		auth:   cfg.Auth,
		logger: logger,
	}
}

// ExchangeSession trades a one-time sign-in token for the session cookie
// and returns the signed-in identity. The token travels in a header, never
// in the URL, so it does not end up in access logs.
func (g *authGateway) ExchangeSession(ctx context.Context, token string) (*entity.Identity, error) {
	req, err := g.client.newRequest(ctx, http.MethodPost, "/api/auth/session", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerSessionID, token)

	var dto identityDTO
	if err := g.client.do(req, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to exchange session token")
	}
	g.logger.Info("session established", slog.String("user_id", dto.ID))

	return dto.toEntity(), nil
}

// FetchIdentity returns the identity bound to the current session cookie,
// or an error when no valid session exists.
func (g *authGateway) FetchIdentity(ctx context.Context) (*entity.Identity, error) {
	var dto identityDTO
	if err := g.client.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to fetch identity")
	}

	return dto.toEntity(), nil
}

// Logout invalidates the server-side session.
func (g *authGateway) Logout(ctx context.Context) error {
	if err := g.client.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return errors.Wrap(err, "failed to log out")
	}

	return nil
}

// SignInURL builds the provider sign-in URL with the redirect target back
// into this application. Without an auth section there is no provider to
// link to, so the URL is empty.
func (g *authGateway) SignInURL() string {
	if g.auth == nil {
		return ""
	}

	redirect := g.auth.AppOrigin + g.auth.RedirectPath

	return g.auth.ProviderURL + "?redirect=" + url.QueryEscape(redirect)
}
