// Package auth provides the identity primitives shared by the login and
// translate handlers: signed time-limited tokens and password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window for issued tokens.
const TokenTTL = 10 * time.Hour

// ErrInvalidToken covers any token that fails signature, expiry, or claim
// checks. Callers report it uniformly and never tell the client which check
// failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated username alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenService issues and verifies HS256-signed identity tokens. Tokens are
// stateless: validity is cryptographic, nothing is persisted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token for username with the service's validity window.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: username,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the claimed username.
// The username is trusted only after this succeeds.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
