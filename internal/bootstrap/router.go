package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	adminhttp "github.com/knmedan/showcase-backend/internal/admin/http"
	adminrepo "github.com/knmedan/showcase-backend/internal/admin/repository"
	httpapi "github.com/knmedan/showcase-backend/internal/api/http"
	"github.com/knmedan/showcase-backend/internal/api/http/middleware"
	"github.com/knmedan/showcase-backend/internal/auth/session"
	projecthttp "github.com/knmedan/showcase-backend/internal/projects/http"
	projectrepo "github.com/knmedan/showcase-backend/internal/projects/repository"
	"github.com/knmedan/showcase-backend/internal/uploads"
	"github.com/knmedan/showcase-backend/internal/webui"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Redis       *redis.Client
	Uploads     *uploads.Store
	StaticDir   string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.Default())

	r.SetHTMLTemplate(webui.Templates())
	r.MaxMultipartMemory = 16 << 20

	if dep.StaticDir != "" {
		r.Static("/static", dep.StaticDir)
	}
	if dep.Uploads != nil {
		r.Static("/uploads", dep.Uploads.Dir())
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	projectRepo := projectrepo.NewProjectRepository(dep.DB)
	adminRepo := adminrepo.NewAdminRepository(dep.DB)
	sessions := session.NewStore(dep.Redis)

	publicHandler := projecthttp.NewHandler(projectRepo, dep.Uploads)
	publicHandler.Register(r)

	adminHandler := adminhttp.NewHandler(adminRepo, projectRepo, sessions)
	adminHandler.Register(r.Group("/admin"), sessions)

	return r
}
