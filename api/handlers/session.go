// ABOUTME: Session handlers for the Huma API
// ABOUTME: Reports the current auth session and performs logout

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"magicmuse-api/api/dto/responses"
	"magicmuse-api/core/interfaces"
	"magicmuse-api/infrastructure/auth/supabase"
)

// SessionHandler handles auth session HTTP requests
type SessionHandler struct {
	provider interfaces.SessionProvider
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(provider interfaces.SessionProvider) *SessionHandler {
	return &SessionHandler{provider: provider}
}

// RegisterRoutes registers all session-related routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "Get the current auth session",
		Tags:        []string{"Session"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/session/logout",
		Summary:     "Invalidate the current auth session",
		Tags:        []string{"Session"},
	}, h.Logout)
}

// SessionInput carries the bearer token for session operations
type SessionInput struct {
	Authorization string `header:"Authorization" doc:"Bearer access token"`
}

// SessionOutput wraps the session report
type SessionOutput struct {
	Body responses.SessionResponse
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if h.provider == nil {
		return &SessionOutput{Body: responses.SessionResponse{Authenticated: false}}, nil
	}
	session, err := h.provider.GetSession(withBearer(ctx, input.Authorization))
	if err != nil {
		return nil, toHumaError(err)
	}
	if session == nil {
		return &SessionOutput{Body: responses.SessionResponse{Authenticated: false}}, nil
	}
	return &SessionOutput{Body: responses.SessionResponse{
		Authenticated: true,
		UserID:        session.User.ID,
		Email:         session.User.Email,
	}}, nil
}

// LogoutOutput acknowledges a logout
type LogoutOutput struct {
	Body struct {
		LoggedOut bool `json:"loggedOut"`
	}
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(ctx context.Context, input *SessionInput) (*LogoutOutput, error) {
	out := &LogoutOutput{}
	if h.provider == nil {
		out.Body.LoggedOut = true
		return out, nil
	}
	if err := h.provider.Logout(withBearer(ctx, input.Authorization)); err != nil {
		return nil, toHumaError(err)
	}
	out.Body.LoggedOut = true
	return out, nil
}

func withBearer(ctx context.Context, header string) context.Context {
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return supabase.WithAccessToken(ctx, token)
}
