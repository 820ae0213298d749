// ABOUTME: Auth session provider interface for the hosted auth service
// ABOUTME: Treated as an opaque async boundary by the core

package interfaces

import "context"

// SessionUser identifies the authenticated user of a session.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an active authenticated session.
type Session struct {
	User        SessionUser `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// SessionProvider abstracts the hosted auth service.
type SessionProvider interface {
	// GetSession returns the current session, or nil when no session exists.
	GetSession(ctx context.Context) (*Session, error)

	// Logout clears the current session. The provider makes no guarantee
	// beyond the session being invalid afterwards.
	Logout(ctx context.Context) error
}
