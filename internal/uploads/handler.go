package uploads

import (
	"net/http"
	"strings"

	"github.com/contentforge/content-api/pkg/logger"
	"github.com/contentforge/content-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes wires the standalone single-image upload endpoint used
// by the rich-text editor. Returns the stored file's public URL.
func RegisterUploadRoutes(r *gin.Engine, sink Sink) {
	r.POST("/upload", func(c *gin.Context) {
		fh, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		defer f.Close()

		name, err := sink.Store(c.Request.Context(), f, fh.Size, fh.Filename, fh.Header.Get("Content-Type"))
		if err != nil {
			logger.Errorf("upload: store failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while storing the file."})
			return
		}
		metrics.UploadsStored.WithLabelValues("image").Inc()

		url := sink.PublicURL(name)
		if strings.HasPrefix(url, "/") {
			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
			url = scheme + "://" + c.Request.Host + url
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	})
}
