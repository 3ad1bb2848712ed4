package auth

import (
	"context"
	"net/http"
	"strings"

	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"
	"campus-placement-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the caller on the request context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		caller, err := claims.Caller()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set(callerKey, caller)
		c.Set("account_id", caller.AccountID.String())
		c.Set("account_kind", string(caller.Kind))

		ctx := context.WithValue(c.Request.Context(), logger.AccountIDKey, caller.AccountID.String())
		ctx = context.WithValue(ctx, logger.AccountKindKey, string(caller.Kind))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireKind rejects callers whose account kind is not one of kinds
func (m *AuthMiddleware) RequireKind(kinds ...models.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := CallerFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, kind := range kinds {
			if caller.Kind == kind {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Account kind not allowed",
			"details": "this endpoint is not available to " + string(caller.Kind) + " accounts",
		})
		c.Abort()
	}
}

// CallerFromContext returns the caller set by RequireAuth
func CallerFromContext(c *gin.Context) (*Caller, error) {
	value, exists := c.Get(callerKey)
	if !exists {
		return nil, apperrors.ErrMissingAccountContext
	}
	caller, ok := value.(*Caller)
	if !ok || caller == nil {
		return nil, apperrors.ErrMissingAccountContext
	}
	return caller, nil
}

// SetCaller stores the caller on the gin context
func SetCaller(c *gin.Context, caller *Caller) {
	c.Set(callerKey, caller)
}
