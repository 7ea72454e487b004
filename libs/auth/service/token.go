package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that cannot be accepted
var ErrInvalidToken = errors.New("invalid token")

// TokenValidator validates access tokens issued by the identity provider
//
// Tokens are HS256-signed with the provider's shared secret. The "sub" claim carries the user ID.
type TokenValidator struct {
	secret   string
	audience string
}

// NewTokenValidator creates a new token validator
//
// "secret" is the provider's signing secret.
// "audience" is the expected "aud" claim; an empty audience skips the check.
func NewTokenValidator(secret, audience string) *TokenValidator {
	return &TokenValidator{
		secret:   secret,
		audience: audience,
	}
}

// ValidateAccessToken validates an access token and returns the user ID from its subject
func (tv *TokenValidator) ValidateAccessToken(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tv.audience != "" {
		opts = append(opts, jwt.WithAudience(tv.audience))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tv.secret), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse token: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", fmt.Errorf("%w: token is invalid", ErrInvalidToken)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("%w: invalid subject claim: %w", ErrInvalidToken, err)
	}
	if subject == "" {
		return "", fmt.Errorf("%w: subject not found in token", ErrInvalidToken)
	}

	return subject, nil
}
