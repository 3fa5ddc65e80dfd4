package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/services"
)

const SessionKey = "session"

// RequireSession gates report submission and assistant features behind a
// signed-in local session, mirroring the client's login screen. It is not
// authentication; it just keeps anonymous requests out of the write paths.
func RequireSession(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessions.Load()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
			c.Abort()
			return
		}
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in to continue"})
			c.Abort()
			return
		}

		c.Set(SessionKey, *session)
		c.Next()
	}
}
