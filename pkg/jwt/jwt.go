package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidClaim = errors.New("invalid token claims")
)

// SessionClaims are the claims the server embeds in the bearer token.
type SessionClaims struct {
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
	jwt.RegisteredClaims
}

// DecodeUnverified extracts the claims from a server-issued token WITHOUT
// verifying its signature. The result is a UX hint only (which views to
// show, which buttons to enable) and must never be treated as an
// authorization boundary: the server re-checks every request against the
// token it issued.
func DecodeUnverified(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &SessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

// RoleFromToken returns the role claim, or "" when the token cannot be
// decoded. Mirrors DecodeUnverified's trust contract.
func RoleFromToken(tokenString string) string {
	claims, err := DecodeUnverified(tokenString)
	if err != nil {
		return ""
	}
	return claims.Role
}

// UserIDFromToken returns the user id claim and whether it was present.
func UserIDFromToken(tokenString string) (int64, bool) {
	claims, err := DecodeUnverified(tokenString)
	if err != nil || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
