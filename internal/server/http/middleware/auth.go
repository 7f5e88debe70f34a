package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/qorikusi/backend/internal/pkg/auth"
	"github.com/qorikusi/backend/internal/server/http/dto"
)

const (
	// UserUUIDContextKey is a gin context key for the authenticated user's UUID.
	UserUUIDContextKey = "userUUID"
	// SubjectContextKey is a gin context key for the token subject (email or username).
	SubjectContextKey = "subject"
	// RoleContextKey is a gin context key for the authenticated role.
	RoleContextKey = "role"

	authCookieName = "qorikusi_token"
)

// AuthRequired ensures the caller presents a valid access token. When roles
// are given, the token's role must be one of them.
func AuthRequired(strategy pkgAuth.Strategy, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("INVALID_TOKEN"))
			return
		}

		claims, err := strategy.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("INVALID_TOKEN"))
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("ACCESS_DENIED"))
			return
		}

		c.Set(UserUUIDContextKey, claims.UserUUID)
		c.Set(SubjectContextKey, claims.Subject)
		c.Set(RoleContextKey, claims.Role)
		c.Next()
	}
}

// AuthOptional attaches the caller's identity when a valid access token is
// presented, and lets the request through anonymously otherwise. Routes that
// serve both guests and customers use this so ownership checks downstream
// can see who is asking.
func AuthOptional(strategy pkgAuth.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := strategy.ParseAccessToken(token); err == nil {
				c.Set(UserUUIDContextKey, claims.UserUUID)
				c.Set(SubjectContextKey, claims.Subject)
				c.Set(RoleContextKey, claims.Role)
			}
		}
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
