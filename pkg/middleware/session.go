package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session"

// Session is the authenticated caller, resolved once by the JWT middleware
// and passed explicitly into services instead of being read from a global.
type Session struct {
	UserID uuid.UUID
	Role   string
}

func (s Session) IsAdmin() bool { return s.Role == "admin" }

// SessionFrom returns the session set by JWTAuthMiddleware, or false on
// unauthenticated routes.
func SessionFrom(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
