package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy from the configured allow-list. An empty
// list or a "*" entry allows every origin. Concrete entries are matched
// case-insensitively, with 127.0.0.1 and localhost treated as the same host so
// a dev console works regardless of which form the browser used.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  originAllowed(allowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func originAllowed(allowedOrigins []string) func(string) bool {
	allowAll := len(allowedOrigins) == 0

	allowed := make(map[string]struct{}, len(allowedOrigins))

	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[normalizeOrigin(origin)] = struct{}{}
	}

	return func(origin string) bool {
		if allowAll {
			return true
		}

		_, ok := allowed[normalizeOrigin(origin)]
		return ok
	}
}

func normalizeOrigin(origin string) string {
	origin = strings.ToLower(origin)
	return strings.Replace(origin, "http://127.0.0.1:", "http://localhost:", 1)
}
