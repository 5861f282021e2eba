package middleware

import (
	"context"
	"net/http"

	"course-service/internal/models"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the gateway-resolved user id.
const ContextUserID = "userID"

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// RequireUser trusts the identity the gateway resolved and injected as the
// X-User-ID header. Requests that never passed the gateway carry no header
// and are rejected.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// RequireTeacher gates instructor-only routes on the stored user's role.
func RequireTeacher(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil || user.Role != models.RoleTeacher {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Teachers only."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID reads the resolved identity off the gin context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
