// Package token issues and verifies the signed tokens that carry the acting
// user's identity and role between the login endpoint and the HTTP middleware.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned when a token fails signature verification,
// is expired, or does not carry the expected claims.
var ErrInvalidToken = errors.New("auth token is invalid")

// Claims is the payload embedded in every issued token.
// Username identifies the actor; Role is consulted by the access policy.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthToken creates and verifies HMAC-signed JWTs with a fixed lifetime.
type AuthToken struct {
	key []byte
	ttl time.Duration
}

// NewAuthToken creates an AuthToken service with the given signing key and
// token lifetime.
func NewAuthToken(key []byte, ttl time.Duration) *AuthToken {
	return &AuthToken{key: key, ttl: ttl}
}

// Create issues a signed token for the given username and role.
func (t *AuthToken) Create(username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
}

// Verify parses and validates a token string, returning its claims.
// Returns ErrInvalidToken for any token that cannot be trusted.
func (t *AuthToken) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Username == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
