package http

import (
	"github.com/gin-gonic/gin"

	"github.com/knmedan/showcase-backend/internal/auth"
	"github.com/knmedan/showcase-backend/internal/auth/session"
)

// Register attaches the admin routes under /admin with the session guards.
func (h *Handler) Register(rg *gin.RouterGroup, sessions *session.Store) {
	anonymous := auth.RequireAnonymous(sessions)
	admin := auth.RequireAdmin(sessions)

	rg.GET("/login", anonymous, h.loginPage)
	rg.POST("/login", anonymous, h.login)
	rg.POST("/logout", admin, h.logout)

	rg.GET("/dashboard", admin, h.dashboard)
	rg.GET("/projects/pending", admin, h.listPending)
	rg.GET("/projects/all", admin, h.listAll)
	rg.GET("/projects/:id", admin, h.detail)
	rg.POST("/projects/:id/approve", admin, h.approve)
	rg.POST("/projects/:id/reject", admin, h.reject)
	rg.DELETE("/projects/:id", admin, h.delete)
}
