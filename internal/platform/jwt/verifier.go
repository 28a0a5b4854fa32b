package jwtmw

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog_backend/internal/feature/auth/domain"
)

// Verifier checks the signature and expiry of access tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for tokens signed with the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyToken parses and verifies a signed token string, returning the
// identity (email) it was issued to and its expiry deadline.
// It returns domain.ErrTokenExpired for a well-formed token past its expiry
// and domain.ErrTokenInvalid for anything else that fails verification
// (malformed token, bad signature, wrong algorithm).
func (v *Verifier) VerifyToken(tokenStr string) (string, time.Time, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", time.Time{}, domain.ErrTokenExpired
		}
		return "", time.Time{}, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return "", time.Time{}, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, domain.ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", time.Time{}, domain.ErrTokenInvalid
	}

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok { // JWT numbers are decoded as float64
		expiresAt = time.Unix(int64(exp), 0)
	}

	return email, expiresAt, nil
}
