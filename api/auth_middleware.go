package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meetboard/meeting-booking-backend/auth"
)

// ActorVerifier resolves a caller token into an Actor before any handler
// touches business logic.
type ActorVerifier interface {
	ParseActor(token string) (auth.Actor, error)
}

func Auth(verifier ActorVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")

		if !ok || len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		actor, err := verifier.ParseActor(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("actor", actor)
	}
}

func OverseerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.MustGet("actor").(auth.Actor)

		if !actor.Overseer() {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}
