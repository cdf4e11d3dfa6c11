package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knmedan/showcase-backend/internal/auth/session"
)

// CookieName is the name of the admin session cookie.
const CookieName = "showcase_sid"

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
)

// RequireAdmin guards admin-only routes. Requests without a live session
// are redirected to the login page. Valid sessions get their expiry window
// refreshed and the admin identity stored in the gin context.
func RequireAdmin(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		// Sliding window: every authenticated request renews the TTL.
		_ = store.Refresh(c.Request.Context(), id)
		SetSessionCookie(c, id)

		c.Set(CtxSession, sess)
		c.Set(CtxSessionID, id)

		c.Next()
	}
}

// RequireAnonymous guards the login routes: an already authenticated admin
// is sent straight to the dashboard instead of re-logging in.
func RequireAnonymous(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err == nil && id != "" {
			if _, err := store.Get(c.Request.Context(), id); err == nil {
				c.Redirect(http.StatusFound, dashboardPath)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// SetSessionCookie writes the HTTP-only, SameSite Lax session cookie with
// the store's full TTL.
func SetSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, int(session.TTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
