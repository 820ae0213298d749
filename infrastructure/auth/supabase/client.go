// ABOUTME: Supabase session provider implementing the auth boundary over REST
// ABOUTME: Resolves the current user from an access token and supports logout

package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	coreerrors "magicmuse-api/core/errors"
	"magicmuse-api/core/interfaces"
	"magicmuse-api/pkg/config"
)

const requestTimeout = 10 * time.Second

// Client implements the SessionProvider interface against the Supabase auth
// REST API. The access token to resolve is carried in the request context.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Supabase auth client.
func NewClient(cfg config.AuthConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("auth service URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("auth service API key is required")
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

type tokenKey struct{}

// WithAccessToken stores the caller's access token in the context for the
// provider to use.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func accessToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// GetSession resolves the current session from the context's access token.
// A missing or invalid token yields a nil session, not an error.
func (c *Client) GetSession(ctx context.Context) (*interfaces.Session, error) {
	token := accessToken(ctx)
	if token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			API:        "supabase auth",
		}
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	return &interfaces.Session{
		User:        interfaces.SessionUser{ID: user.ID, Email: user.Email},
		AccessToken: token,
	}, nil
}

// Logout revokes the context's access token. Logout without a token is a
// no-op.
func (c *Client) Logout(ctx context.Context) error {
	token := accessToken(ctx)
	if token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusUnauthorized {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			API:        "supabase auth",
		}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
}
