package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the shopper's session ID. A cart
// lives and dies with this ID; nothing is persisted server-side beyond the
// process, so losing the cookie simply starts a fresh session.
const SessionCookie = "shop_session"

const sessionContextKey = "session_id"

// Session assigns a session ID on first visit and exposes it to handlers
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, 30*24*3600, "/", "", false, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// GetSessionID returns the session ID set by the Session middleware
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
