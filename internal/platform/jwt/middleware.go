package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/auth/domain"
)

const (
	// ContextIdentity is the gin context key holding the authenticated user's email.
	ContextIdentity = "identity"
	// ContextToken is the gin context key holding the raw bearer token.
	ContextToken = "token"
)

// Gate failure bodies. The original API reports token failures with HTTP 200
// and a status body; clients key off the body, so the contract is kept.
const (
	statusTokenInvalid  = "Token is Invalid"
	statusTokenExpired  = "Token is Expired"
	statusTokenNotFound = "Authorization Token not found"
)

// TokenValidator checks a presented token and resolves the identity it was
// issued to. Following Go convention, the interface is defined by the
// consumer (this middleware), not the provider (the auth usecase).
type TokenValidator interface {
	// ValidateToken returns the identity bound to the token, or
	// domain.ErrTokenExpired / domain.ErrTokenInvalid.
	ValidateToken(ctx context.Context, token string) (string, error)
}

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated users only. On success the resolved
// identity and the raw token are stored in the request context; on failure
// the request is aborted before the protected handler runs.
func AuthRequired(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, api.StatusResponse{Status: statusTokenNotFound})
			return
		}
		// An empty token after the scheme counts as absent, not invalid.
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusOK, api.StatusResponse{Status: statusTokenNotFound})
			return
		}

		// 2. Verify signature, expiry and revocation
		identity, err := validator.ValidateToken(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusOK, api.StatusResponse{Status: statusTokenExpired})
				return
			}
			c.AbortWithStatusJSON(http.StatusOK, api.StatusResponse{Status: statusTokenInvalid})
			return
		}

		// 3. Attach the resolved identity for downstream handlers
		c.Set(ContextIdentity, identity)
		c.Set(ContextToken, tokenStr)
		c.Next()
	}
}
