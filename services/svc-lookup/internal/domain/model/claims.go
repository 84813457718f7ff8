package model

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the bearer token claims accepted by the public API. The
// subject identifies the operator recorded on query history rows.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`

	jwt.RegisteredClaims
}

func (c *Claims) HasRole(role string) bool {
	return c.Role == role || slices.Contains(c.Roles, role)
}
