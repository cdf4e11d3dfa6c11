package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type HealthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Service      string    `json:"service"`
	Version      string    `json:"version"`
	DB           string    `json:"db,omitempty"`
	SessionStore string    `json:"sessionStore,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          *sql.DB
	sessions    *redis.Client
}

func NewHealthHandler(serviceName, version string, db *sql.DB, sessions *redis.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		sessions:    sessions,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.db.PingContext(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	sessionStatus := "disabled"
	if h.sessions != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.sessions.Ping(pingCtx).Err(); err != nil {
			sessionStatus = "down"
		} else {
			sessionStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC(),
		Service:      h.serviceName,
		Version:      h.version,
		DB:           dbStatus,
		SessionStore: sessionStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/health", h.HealthCheck)
}
