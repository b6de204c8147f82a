package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the session token claims structure. The account id is the
// only application claim.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses session tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a TokenIssuer for the given signing secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue creates a signed session token bound to the given account id.
func (t *TokenIssuer) Issue(accountID string) (string, error) {
	// TODO: set an ExpiresAt claim here; issued tokens currently never expire.
	claims := &Claims{
		ID: accountID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates a session token string and returns its claims.
func (t *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
