package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "cart_session"
	sessionCtxKey = "sessionID"
	// cookie lifetime; the ledger store applies its own idle TTL
	sessionMaxAge = 12 * 60 * 60
)

// sessionMiddleware binds each request to a cart session, issuing a cookie
// on first contact. The session ID is the key into the ledger store; the
// ledger itself is never kept in ambient state.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
