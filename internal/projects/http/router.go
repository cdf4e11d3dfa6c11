package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/knmedan/showcase-backend/internal/projects/domain"
)

// ProjectRepository is the slice of the persistence layer the public
// pages need.
type ProjectRepository interface {
	Add(ctx context.Context, sub domain.NewSubmission) (int64, error)
	List(ctx context.Context, search, moduleFilter string, approvedOnly bool) ([]domain.Project, error)
}

// Register attaches the public routes to the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.landing)
	r.GET("/upload", h.uploadForm)
	r.POST("/upload", h.uploadSubmit)
	r.GET("/projects", h.listPublic)
}
