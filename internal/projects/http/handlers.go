package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/knmedan/showcase-backend/internal/projects/domain"
	"github.com/knmedan/showcase-backend/internal/uploads"
)

// Handler serves the public pages: landing, submission form and the
// approved-projects gallery.
type Handler struct {
	repo    ProjectRepository
	uploads *uploads.Store
}

func NewHandler(repo ProjectRepository, uploads *uploads.Store) *Handler {
	return &Handler{repo: repo, uploads: uploads}
}

func (h *Handler) landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *Handler) uploadForm(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"Error": nil,
		"Form":  submissionForm{},
	})
}

func (h *Handler) uploadSubmit(c *gin.Context) {
	var form submissionForm
	if err := c.ShouldBind(&form); err != nil {
		h.rerenderUpload(c, form, "Invalid form submission")
		return
	}
	form.ProjectName = strings.TrimSpace(form.ProjectName)
	form.ModuleName = strings.TrimSpace(form.ModuleName)

	if form.ProjectName == "" || form.ModuleName == "" {
		h.rerenderUpload(c, form, "Project name and module are required")
		return
	}

	mf, err := c.MultipartForm()
	if err != nil {
		h.rerenderUpload(c, form, "Invalid form submission")
		return
	}

	files := mf.File["screenshots"]
	if len(files) != domain.ScreenshotCount {
		h.rerenderUpload(c, form, "Please upload exactly 3 screenshots")
		return
	}

	names, err := h.uploads.SaveAll(c, files)
	if err != nil {
		if errors.Is(err, uploads.ErrFileTooLarge) {
			h.rerenderUpload(c, form, "Each screenshot must be 5MB or smaller")
			return
		}
		log.Printf("upload error: %v", err)
		h.rerenderUpload(c, form, "Error uploading project. Please try again.")
		return
	}

	_, err = h.repo.Add(c.Request.Context(), domain.NewSubmission{
		ProjectName: form.ProjectName,
		ProjectLink: strings.TrimSpace(form.ProjectLink),
		StudentName: strings.TrimSpace(form.StudentName),
		TeacherName: strings.TrimSpace(form.TeacherName),
		ModuleName:  form.ModuleName,
		Screenshots: names,
	})
	if err != nil {
		// The row was never written; don't leave orphan files behind.
		h.uploads.Remove(names...)
		log.Printf("upload error: %v", err)
		h.rerenderUpload(c, form, "Error uploading project. Please try again.")
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"Message": "Project submitted successfully! It will be visible after admin approval.",
	})
}

func (h *Handler) listPublic(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")

	projects, err := h.repo.List(c.Request.Context(), search, category, true)
	if err != nil {
		log.Printf("list projects error: %v", err)
		c.String(http.StatusInternalServerError, "Error fetching projects")
		return
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Projects": projects,
		"Search":   search,
		"Category": category,
	})
}

func (h *Handler) rerenderUpload(c *gin.Context, form submissionForm, msg string) {
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"Error": msg,
		"Form":  form,
	})
}
