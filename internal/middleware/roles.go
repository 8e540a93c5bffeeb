package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireRole creates a Gin middleware that lets the request through only
// when the authenticated user's role satisfies the required minimum. The
// role is resolved from storage on every request, so a demoted or
// deactivated user loses access without waiting for token expiry.
func RequireRole(required domain.UserRole, users portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Failed to resolve user for role check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !user.Role.AtLeast(required) {
			logger.Warn("Insufficient role",
				slog.String("role", string(user.Role)),
				slog.String("required", string(required)),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
