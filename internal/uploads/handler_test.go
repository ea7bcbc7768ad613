package uploads

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestUploadEndpoint(t *testing.T) {
	sink, err := NewDiskSink(t.TempDir(), "/uploads")
	require.NoError(t, err)

	g := gin.New()
	RegisterUploadRoutes(g, sink)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "editor.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("img-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, strings.HasPrefix(resp["url"], "http://"), "url %q", resp["url"])
	require.Contains(t, resp["url"], "/uploads/")
	require.True(t, strings.HasSuffix(resp["url"], "-editor.png"), "url %q", resp["url"])
}

func TestUploadEndpoint_NoFile(t *testing.T) {
	sink, err := NewDiskSink(t.TempDir(), "/uploads")
	require.NoError(t, err)

	g := gin.New()
	RegisterUploadRoutes(g, sink)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
