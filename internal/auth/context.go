package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/knmedan/showcase-backend/internal/auth/session"
)

const (
	// CtxSession is the gin context key for the authenticated admin's session.
	CtxSession = "admin_session"
	// CtxSessionID is the gin context key for the session's cookie ID.
	CtxSessionID = "admin_session_id"
)

// AdminSession extracts the authenticated admin's session from the gin
// context. It is set by RequireAdmin; nil means the request is anonymous.
func AdminSession(c *gin.Context) *session.Session {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
