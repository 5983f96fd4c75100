package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/token"
)

// Context keys set by Auth
const (
	UsernameKey       = "username"
	TokenIDKey        = "tokenID"
	TokenExpiresAtKey = "tokenExpiresAt"
)

// TokenValidator checks a bearer token, including its revocation status
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenStr string) (*token.Claims, error)
}

// Auth returns a middleware that rejects requests without a valid, unrevoked bearer token
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		claims, err := validator.ValidateToken(ctx, tokenString)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(UsernameKey, claims.Subject)
		c.Set(TokenIDKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(TokenExpiresAtKey, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// Browsers cannot set headers on websocket upgrades, so those may pass
// it as the access_token query parameter instead.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if websocketUpgrade(c) {
			if t := c.Query("access_token"); t != "" {
				return t, true
			}
		}
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func websocketUpgrade(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("Upgrade"), "websocket")
}

// GetUsername returns the authenticated username, or "" outside Auth
func GetUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

// GetTokenID returns the jti of the authenticated token
func GetTokenID(c *gin.Context) string {
	return c.GetString(TokenIDKey)
}

// GetTokenExpiresAt returns the expiry of the authenticated token
func GetTokenExpiresAt(c *gin.Context) time.Time {
	return c.GetTime(TokenExpiresAtKey)
}
