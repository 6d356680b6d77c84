package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flysolo/internal/auth"
	"flysolo/internal/domain"
)

const actorContextKey = "actor"

// AuthMiddleware returns middleware that resolves the bearer token into an
// actor identity and aborts unauthenticated requests.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token is required"})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(actorContextKey, claims.Actor())
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor set by AuthMiddleware.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
