// Package rest implements the backend data contracts over HTTP. Every call
// goes through a shared credential-bearing client: the session credential is
// an opaque cookie the jar carries, never a value this code reads.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"frontdesk/config"
	"frontdesk/internal/domain/entity"
	domainerrors "frontdesk/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const headerRequestID = "X-Request-Id"

// Client is the shared transport for all backend repositories and the auth
// gateway. It owns the cookie jar, the configured origin, and the request
// plumbing; it holds no cached state between calls.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// NewClient creates the shared backend client from config.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.Origin, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.Backend.Timeout,
		},
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// newRequest builds a request against the configured origin with a fresh
// request ID attached.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s %s request", method, path)
	}
	req.Header.Set(headerRequestID, uuid.New().String())

	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out when out is
// non-nil. Transport failures become NetworkError; non-2xx responses become
// ServerError carrying the server's detail text.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request transport failure",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err))

		return domainerrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.serverError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

// doJSON marshals body (when non-nil), executes, and decodes into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// uploadFile streams the file as a multipart form under the field name
// "file", the shape the backend's upload endpoints expect.
func (c *Client) uploadFile(ctx context.Context, path string, file entity.FileUpload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return errors.Wrap(err, "failed to create multipart field")
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return errors.Wrap(err, "failed to read upload content")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

// serverError converts a non-2xx response into a ServerError, pulling the
// detail text out of the conventional {"detail": "..."} error body.
func (c *Client) serverError(resp *http.Response) error {
	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	c.logger.Debug("server rejected request",
		slog.String("path", resp.Request.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("detail", body.Detail))

	return domainerrors.NewServerError(resp.StatusCode, body.Detail)
}
