package middleware

import (
	"net/http"

	"github.com/crickhub-dev/crickhub/internal/session"
	"github.com/crickhub-dev/crickhub/internal/types"
	"github.com/gin-gonic/gin"
)

// Session resolves the session cookie into a user on the request context.
// Requests without a valid token continue anonymously; the Require* middleware
// below decide whether that is acceptable.
func Session(store *session.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(types.SessionCookieName)

		if err == nil && token != "" {
			if user, ok := store.Get(token); ok {
				ctx.Set(types.ContextUserKey, user)
			}
		}

		ctx.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, exists := ctx.Get(types.ContextUserKey); !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		ctx.Next()
	}
}

// RequireRole gates a route on an exact role match.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, ok := value.(types.SessionUser)

		if !ok || user.Role != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		ctx.Next()
	}
}
