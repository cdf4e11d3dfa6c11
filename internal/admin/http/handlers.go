package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	admindomain "github.com/knmedan/showcase-backend/internal/admin/domain"
	"github.com/knmedan/showcase-backend/internal/auth"
	"github.com/knmedan/showcase-backend/internal/auth/session"
	"github.com/knmedan/showcase-backend/internal/projects/domain"
)

// AdminRepository is the slice of the persistence layer the login flow needs.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*admindomain.Admin, error)
}

// ProjectRepository covers the moderation operations.
type ProjectRepository interface {
	ListPending(ctx context.Context) ([]domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Handler serves the admin login flow and the moderation surface.
type Handler struct {
	admins   AdminRepository
	projects ProjectRepository
	sessions *session.Store
}

func NewHandler(admins AdminRepository, projects ProjectRepository, sessions *session.Store) *Handler {
	return &Handler{admins: admins, projects: projects, sessions: sessions}
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"Error": nil})
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.rerenderLogin(c, "Invalid credentials")
		return
	}

	admin, err := h.admins.GetByUsername(c.Request.Context(), form.Username)
	if err != nil {
		if !errors.Is(err, admindomain.ErrNotFound) {
			log.Printf("login error: %v", err)
		}
		// Missing user and wrong password are indistinguishable on purpose.
		h.rerenderLogin(c, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(form.Password)) != nil {
		h.rerenderLogin(c, "Invalid credentials")
		return
	}

	id, err := h.sessions.Create(c.Request.Context(), admin.ID, admin.Username)
	if err != nil {
		log.Printf("session create error: %v", err)
		h.rerenderLogin(c, "Login failed. Please try again.")
		return
	}

	auth.SetSessionCookie(c, id)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	if id := c.GetString(auth.CtxSessionID); id != "" {
		if err := h.sessions.Destroy(c.Request.Context(), id); err != nil {
			log.Printf("logout error: %v", err)
		}
	}
	auth.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Handler) dashboard(c *gin.Context) {
	pending, err := h.projects.ListPending(c.Request.Context())
	if err != nil {
		log.Printf("dashboard error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading dashboard")
		return
	}
	all, err := h.projects.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("dashboard error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading dashboard")
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Admin":         auth.AdminSession(c),
		"PendingCount":  len(pending),
		"TotalProjects": len(all),
	})
}

func (h *Handler) listPending(c *gin.Context) {
	projects, err := h.projects.ListPending(c.Request.Context())
	if err != nil {
		log.Printf("pending projects error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading projects")
		return
	}
	c.HTML(http.StatusOK, "admin_projects.html", gin.H{
		"Admin":    auth.AdminSession(c),
		"Projects": projects,
		"Title":    "Pending Projects",
	})
}

func (h *Handler) listAll(c *gin.Context) {
	projects, err := h.projects.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("all projects error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading projects")
		return
	}
	c.HTML(http.StatusOK, "admin_projects.html", gin.H{
		"Admin":    auth.AdminSession(c),
		"Projects": projects,
		"Title":    "All Projects",
	})
}

func (h *Handler) detail(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.String(http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("project detail error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading project")
		return
	}

	c.HTML(http.StatusOK, "admin_project_detail.html", gin.H{
		"Admin":   auth.AdminSession(c),
		"Project": p,
	})
}

func (h *Handler) approve(c *gin.Context) {
	h.setStatus(c, domain.StatusApproved, "Project approved", "Failed to approve project")
}

func (h *Handler) reject(c *gin.Context) {
	h.setStatus(c, domain.StatusRejected, "Project rejected", "Failed to reject project")
}

func (h *Handler) setStatus(c *gin.Context, status domain.Status, okMsg, failMsg string) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	n, err := h.projects.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		log.Printf("update status error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": failMsg})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": okMsg})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	n, err := h.projects.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("delete project error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete project"})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}

func (h *Handler) rerenderLogin(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"Error": msg})
}

// projectID parses the :id route parameter. An unparsable id cannot match
// any row, so it reports not-found directly.
func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return 0, false
	}
	return id, true
}
