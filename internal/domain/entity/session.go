package entity

import (
	"context"
	"time"
)

type Session struct {
	ID          string                    `json:"id"`
	AccessToken string                    `json:"access_token"`
	Email       string                    `json:"email"`
	Name        string                    `json:"name,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	ExpiresAt   time.Time                 `json:"expires_at"`
	Screens     map[string]ScreenSnapshot `json:"screens,omitempty"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// ScreenSnapshot is the last successfully loaded page of a list screen.
type ScreenSnapshot struct {
	Query    string    `json:"query"`
	Items    []Record  `json:"items"`
	Total    int       `json:"total"`
	LoadedAt time.Time `json:"loaded_at"`
}

type sessionKey struct{}

func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
	// the SPA stored this under localStorage "accessToken"
	AccessTokenCamel string `json:"accessToken"`
	User             struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	} `json:"user"`
}

func (r LoginResult) BearerToken() string {
	switch {
	case r.AccessToken != "":
		return r.AccessToken
	case r.AccessTokenCamel != "":
		return r.AccessTokenCamel
	}
	return r.Token
}
