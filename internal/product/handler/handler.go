package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/contentforge/content-api/internal/product/repository"
	"github.com/contentforge/content-api/internal/product/service"
	"github.com/contentforge/content-api/internal/uploads"
	"github.com/contentforge/content-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Handler exposes the product CRUD endpoints. The four description fields
// and the three list fields arrive as JSON-encoded strings; the "imageUrl"
// and "gallery" file groups are persisted as stored paths.
type Handler struct {
	svc  *service.Service
	sink uploads.Sink
}

func New(svc *service.Service, sink uploads.Sink) *Handler {
	return &Handler{svc: svc, sink: sink}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/products", h.list)
	r.GET("/products/:id", h.getByID)
	r.GET("/products/path/:productPath", h.getByPath)
	r.POST("/products", h.create)
	r.PUT("/products/:id", h.update)
	r.DELETE("/products/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) getByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) getByPath(c *gin.Context) {
	path := strings.TrimSpace(c.Param("productPath"))
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product path"})
		return
	}
	p, err := h.svc.GetByPath(c.Request.Context(), path)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	images, ok := h.storeGroup(c, "imageUrl")
	if !ok {
		return
	}
	gallery, ok := h.storeGroup(c, "gallery")
	if !ok {
		return
	}
	in.Images = images
	in.Gallery = gallery

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	// a group with no uploaded files stays nil so stored paths are retained
	if hasFiles(c, "imageUrl") {
		images, ok := h.storeGroup(c, "imageUrl")
		if !ok {
			return
		}
		in.Images = images
	}
	if hasFiles(c, "gallery") {
		gallery, ok := h.storeGroup(c, "gallery")
		if !ok {
			return
		}
		in.Gallery = gallery
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *Handler) bindInput(c *gin.Context) (service.Input, bool) {
	in := service.Input{
		ProductName: strings.TrimSpace(c.PostForm("productName")),
		ProductLink: strings.TrimSpace(c.PostForm("productLink")),
		CalendlyURL: strings.TrimSpace(c.PostForm("calendlyUrl")),
		ProductPath: strings.TrimSpace(c.PostForm("productPath")),
	}
	var err error
	if in.Description, err = parseDoc(c, "description"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return in, false
	}
	if in.WhyChooseDes, err = parseDoc(c, "why_choose_des"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return in, false
	}
	if in.WhoNeedDes, err = parseDoc(c, "who_need_des"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return in, false
	}
	if in.Category, err = parseDoc(c, "category"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return in, false
	}
	if in.Benefits, err = parseDocs(c, "benefits"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return in, false
	}
	if in.CustomerTestimonials, err = parseDocs(c, "customerTestimonials"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return in, false
	}
	if in.Plans, err = parseDocs(c, "plans"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return in, false
	}
	return in, true
}

// storeGroup writes all files of one form field to the sink and returns their
// stored paths.
func (h *Handler) storeGroup(c *gin.Context, field string) ([]string, bool) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return []string{}, true
	}
	names, err := uploads.StoreAll(c.Request.Context(), h.sink, field, form.File[field])
	if err != nil {
		logger.Errorf("product: storing %s files: %v", field, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return nil, false
	}
	paths := make([]string, 0, len(names))
	for _, n := range names {
		paths = append(paths, h.sink.StoredPath(n))
	}
	return paths, true
}

func hasFiles(c *gin.Context, field string) bool {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return false
	}
	return len(form.File[field]) > 0
}

func (h *Handler) fail(c *gin.Context, err error) {
	var missing *service.MissingFieldError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID format"})
	case errors.Is(err, repository.ErrDuplicatePath):
		c.JSON(http.StatusConflict, gin.H{"message": "Product path already exists"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	default:
		logger.Errorf("product handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}

func parseDoc(c *gin.Context, field string) (interface{}, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, nil
	}
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("Invalid JSON format for '%s'.", field)
	}
	return doc, nil
}

func parseDocs(c *gin.Context, field string) ([]interface{}, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, nil
	}
	var docs []interface{}
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, fmt.Errorf("Invalid JSON format for '%s'.", field)
	}
	return docs, nil
}
