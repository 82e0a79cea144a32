// Package auth verifies bearer tokens issued by Keycloak.
package auth

import (
	"context"
	"errors"
	"slices"
)

var ErrInvalidToken = errors.New("invalid token")

// Authenticator turns a bearer token into the principal it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

type Config struct {
	Enabled  bool
	Issuer   string
	JWKSURL  string
	Audience string
}

type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	// Roles are the Keycloak realm roles granted to the subject.
	Roles  []string
	Claims map[string]any
}

func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}
