package middleware

import (
	"context"
	"net/http"
	"strings"

	"comenta-app/internal/config"
	"comenta-app/internal/models"
	"comenta-app/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionStore reports whether a server-side session exists. Logout deletes
// the session, so a revoked token fails here even before its JWT expiry.
type SessionStore interface {
	Exists(ctx context.Context, keys ...string) (int64, error)
}

// AuthRequired rejects requests without a valid bearer token backed by a
// live session, and stores the caller identity in the gin context.
func AuthRequired(cfg *config.Config, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c, cfg, sessions)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid bearer token is
// present but lets anonymous requests through. Read endpoints use this to
// compute the "liked by me" flag for signed-in viewers. A logged-out token
// is treated as anonymous, not rejected.
func OptionalAuth(cfg *config.Config, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromHeader(c, cfg, sessions); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role.(string) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context, cfg *config.Config, sessions SessionStore) (*utils.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
	if err != nil {
		return nil, false
	}

	// A valid signature is not enough: the session must still exist.
	n, err := sessions.Exists(c.Request.Context(), "session:"+claims.UserID)
	if err != nil || n == 0 {
		return nil, false
	}

	return claims, true
}

func setIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	c.Set("user_role", claims.Role)
}

// CurrentUserID returns the authenticated caller's id, or "" for anonymous
// requests.
func CurrentUserID(c *gin.Context) string {
	if id, exists := c.Get("user_id"); exists {
		return id.(string)
	}
	return ""
}
