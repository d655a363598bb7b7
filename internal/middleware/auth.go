package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/SubhashKumar14/LearnPath/internal/models"
)

// Session keys. The session itself lives server-side in the session store;
// the cookie only carries the opaque token.
const (
	SessionUserID = "user_id"
	SessionName   = "name"
	SessionEmail  = "email"
	SessionRole   = "role"
)

// CurrentUserID returns the user id bound to the request's session.
func CurrentUserID(c *gin.Context) (uint, bool) {
	id, ok := sessions.Default(c).Get(SessionUserID).(uint)
	return id, ok
}

// CurrentRole returns the role snapshot taken at login time. It can go
// stale if the user's role changes while the session is alive.
func CurrentRole(c *gin.Context) (models.UserRole, bool) {
	role, ok := sessions.Default(c).Get(SessionRole).(string)
	if !ok {
		return "", false
	}
	return models.UserRole(role), true
}

// RequireAuth gates page routes: without a session the client is sent to
// the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuthAPI gates API routes: without a session the request fails
// with 401 instead of a redirect.
func RequireAuthAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates admin pages. It runs after RequireAuth, so a missing
// role means a broken session rather than a missing login.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if role != models.RoleAdmin {
			c.String(http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminAPI is RequireAdmin for API routes, answering in JSON.
func RequireAdminAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
