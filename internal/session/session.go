// Package session models the authentication state handed to the rest of the
// app by the identity provider. Tokens are issued and verified elsewhere;
// this package only extracts identity claims for display and scoping.
package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Provider endpoints the app redirects to. The actual login flow happens
// off-process.
const (
	LoginPath  = "/api/auth/login"
	LogoutPath = "/api/auth/logout"
)

// ErrInvalidToken is returned when an ID token cannot be parsed or is
// missing its subject claim.
var ErrInvalidToken = errors.New("invalid id token")

// User is the identity extracted from a provider ID token. SubjectID is the
// stable key every stored record is scoped by.
type User struct {
	SubjectID string `json:"sub"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Picture   string `json:"picture,omitempty"`
}

// Session is the authentication state at a point in time. Exactly one of
// the three shapes holds: loading, failed (Err set), or settled with User
// either present or nil.
type Session struct {
	User      *User
	IsLoading bool
	Err       error
}

// Authenticated reports whether a settled, error-free session has a user.
func (s Session) Authenticated() bool {
	return !s.IsLoading && s.Err == nil && s.User != nil
}

// UserFromIDToken extracts identity claims from a raw provider ID token.
// The token's signature was already verified by the provider callback, so
// claims are read without re-verification.
func UserFromIDToken(raw string) (*User, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}

	user := &User{SubjectID: sub}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		user.Picture = picture
	}
	return user, nil
}
