package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/contentforge/content-api/internal/blog"
	"github.com/contentforge/content-api/internal/blog/repository"
	"github.com/contentforge/content-api/internal/blog/service"
	"github.com/contentforge/content-api/internal/uploads"
	"github.com/contentforge/content-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Handler exposes the blog CRUD endpoints. Multipart form fields that carry
// JSON-encoded objects (title, description, category, content) are parsed
// once before validation; up to maxImages files arrive in the "blogimage"
// field.
type Handler struct {
	svc       *service.Service
	sink      uploads.Sink
	maxImages int
}

func New(svc *service.Service, sink uploads.Sink, maxImages int) *Handler {
	if maxImages <= 0 {
		maxImages = 5
	}
	return &Handler{svc: svc, sink: sink, maxImages: maxImages}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/blog/:blogpath", h.getBySlug)
	r.GET("/blog", h.list)
	r.GET("/blogs/:id", h.getByID)
	r.POST("/blog", h.create)
	r.PUT("/blog/:id", h.update)
	r.DELETE("/blog/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	files, ok := h.formImages(c)
	if !ok {
		return
	}
	names, err := uploads.StoreAll(c.Request.Context(), h.sink, "blogimage", files)
	if err != nil {
		logger.Errorf("blog create: storing images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while creating the blog."})
		return
	}
	in.Images = names

	post, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "A blog with this title already exists.")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) list(c *gin.Context) {
	posts, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) getByID(c *gin.Context) {
	post, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) getBySlug(c *gin.Context) {
	path := strings.TrimSpace(c.Param("blogpath"))
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slug parameter"})
		return
	}
	post, err := h.svc.GetByPath(c.Request.Context(), path)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) update(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	files, ok := h.formImages(c)
	if !ok {
		return
	}
	if len(files) > 0 {
		names, err := uploads.StoreAll(c.Request.Context(), h.sink, "blogimage", files)
		if err != nil {
			logger.Errorf("blog update: storing images: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while updating the blog."})
			return
		}
		in.Images = names
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err, "Another blog with the same title already exists.")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog and image(s) deleted successfully"})
}

// bindInput parses the multipart form fields into a PostInput. JSON-bearing
// fields are decoded here so malformed input gets a targeted 400 instead of
// leaking out as a server error.
func (h *Handler) bindInput(c *gin.Context) (service.PostInput, bool) {
	var in service.PostInput
	var err error

	if in.Title, err = parseText(c, "title"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return in, false
	}
	if in.Description, err = parseText(c, "description"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return in, false
	}
	if in.Category, err = parseText(c, "category"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return in, false
	}
	if in.Content, err = parseContent(c, "content"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return in, false
	}
	in.Author = strings.TrimSpace(c.PostForm("author"))
	in.Products = strings.TrimSpace(c.PostForm("products"))
	return in, true
}

// formImages returns the uploaded blogimage file headers, enforcing the
// per-request cap.
func (h *Handler) formImages(c *gin.Context) ([]*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, true
	}
	files := form.File["blogimage"]
	if len(files) > h.maxImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Too many files uploaded (max %d).", h.maxImages)})
		return nil, false
	}
	return files, true
}

func (h *Handler) fail(c *gin.Context, err error, duplicateMsg string) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID format."})
	case errors.Is(err, repository.ErrDuplicatePath):
		if duplicateMsg == "" {
			duplicateMsg = "A blog with this title already exists."
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": duplicateMsg})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
	default:
		logger.Errorf("blog handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

func parseText(c *gin.Context, field string) (blog.LocalizedText, error) {
	var lt blog.LocalizedText
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return lt, nil
	}
	if err := json.Unmarshal([]byte(raw), &lt); err != nil {
		return lt, fmt.Errorf("Invalid JSON format for '%s'.", field)
	}
	return lt, nil
}

func parseContent(c *gin.Context, field string) (blog.LocalizedContent, error) {
	var lc blog.LocalizedContent
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return lc, nil
	}
	if err := json.Unmarshal([]byte(raw), &lc); err != nil {
		return lc, fmt.Errorf("Invalid JSON format for '%s'.", field)
	}
	return lc, nil
}
