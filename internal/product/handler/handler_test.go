package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"testing"
	"time"

	"github.com/contentforge/content-api/internal/product"
	"github.com/contentforge/content-api/internal/product/repository"
	"github.com/contentforge/content-api/internal/product/service"
	"github.com/contentforge/content-api/internal/uploads"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	sink, err := uploads.NewDiskSink(dir, "/uploads")
	require.NoError(t, err)
	g := gin.New()
	New(service.New(repository.NewMemoryRepo(), sink), sink).Register(g)
	return g, dir
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, names := range files {
		for _, name := range names {
			fw, err := mw.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = fw.Write([]byte("data-" + name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"productName":          "Widget Pro",
		"productLink":          "https://example.com/widget",
		"calendlyUrl":          "https://calendly.com/widget-demo",
		"productPath":          "widget-pro",
		"description":          `{"en":"A fine widget"}`,
		"why_choose_des":       `{"en":"Because"}`,
		"who_need_des":         `{"en":"Everyone"}`,
		"category":             `{"en":"tools"}`,
		"benefits":             `[{"title":"fast"},{"title":"cheap"}]`,
		"customerTestimonials": `[{"name":"Bo","quote":"great"}]`,
		"plans":                `[{"name":"basic","price":10}]`,
	}
}

func doMultipart(g *gin.Engine, method, url string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func createProduct(t *testing.T, g *gin.Engine, fields map[string]string, files map[string][]string) product.Product {
	t.Helper()
	body, ct := multipartBody(t, fields, files)
	w := doMultipart(g, http.MethodPost, "/products", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p product.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreateProduct(t *testing.T) {
	g, dir := newTestServer(t)

	p := createProduct(t, g, validFields(), map[string][]string{
		"imageUrl": {"hero.png"},
		"gallery":  {"g1.png", "g2.png"},
	})
	require.Equal(t, "Widget Pro", p.ProductName)
	require.Equal(t, "widget-pro", p.ProductPath)
	require.Len(t, p.ImageURL, 1)
	require.Len(t, p.Gallery, 2)
	require.Len(t, p.Benefits, 2)
	require.Len(t, p.Plans, 1)

	// file groups are persisted as stored paths, not bare filenames
	base := filepath.Base(dir)
	require.Equal(t, base, path.Dir(p.ImageURL[0]))
	_, err := os.Stat(filepath.Join(dir, path.Base(p.ImageURL[0])))
	require.NoError(t, err)
}

func TestCreateProduct_OptionalArraysDefaultEmpty(t *testing.T) {
	g, _ := newTestServer(t)
	fields := validFields()
	delete(fields, "benefits")
	delete(fields, "customerTestimonials")
	delete(fields, "plans")

	p := createProduct(t, g, fields, nil)
	require.NotNil(t, p.Benefits)
	require.Empty(t, p.Benefits)
	require.Empty(t, p.CustomerTestimonials)
	require.Empty(t, p.Plans)
}

func TestCreateProduct_DuplicatePath(t *testing.T) {
	g, _ := newTestServer(t)
	createProduct(t, g, validFields(), nil)

	body, ct := multipartBody(t, validFields(), nil)
	w := doMultipart(g, http.MethodPost, "/products", body, ct)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "Product path already exists")

	// the conflicting request did not create a second record
	lw := httptest.NewRecorder()
	g.ServeHTTP(lw, httptest.NewRequest(http.MethodGet, "/products", nil))
	var all []product.Product
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &all))
	require.Len(t, all, 1)
}

func TestCreateProduct_MissingRequiredDoc(t *testing.T) {
	g, _ := newTestServer(t)
	for _, drop := range []string{"description", "why_choose_des", "who_need_des", "category"} {
		fields := validFields()
		delete(fields, drop)
		body, ct := multipartBody(t, fields, nil)
		w := doMultipart(g, http.MethodPost, "/products", body, ct)
		require.Equal(t, http.StatusBadRequest, w.Code, "dropped field %s", drop)
		require.Contains(t, w.Body.String(), drop)
	}
}

func TestCreateProduct_MalformedJSONField(t *testing.T) {
	g, _ := newTestServer(t)
	fields := validFields()
	fields["plans"] = `[{"name":`
	body, ct := multipartBody(t, fields, nil)
	w := doMultipart(g, http.MethodPost, "/products", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid JSON format for 'plans'")
}

func TestGetProduct(t *testing.T) {
	g, _ := newTestServer(t)
	p := createProduct(t, g, validFields(), nil)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+p.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/not-an-objectid", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid product ID format")

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/64b000000000000000000000", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductByPath(t *testing.T) {
	g, _ := newTestServer(t)
	createProduct(t, g, validFields(), nil)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/path/widget-pro", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/path/%20", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/path/unknown", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProduct_FieldFallback(t *testing.T) {
	g, dir := newTestServer(t)
	p := createProduct(t, g, validFields(), map[string][]string{"gallery": {"g1.png"}})

	// only the name changes; everything else falls back to stored values
	body, ct := multipartBody(t, map[string]string{"productName": "Widget Ultra"}, nil)
	w := doMultipart(g, http.MethodPut, "/products/"+p.ID.Hex(), body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated product.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Widget Ultra", updated.ProductName)
	require.Equal(t, p.ProductLink, updated.ProductLink)
	require.Equal(t, p.ProductPath, updated.ProductPath)
	require.Equal(t, p.Description, updated.Description)
	require.Equal(t, p.Gallery, updated.Gallery)
	require.Len(t, updated.Benefits, 2)

	// the retained gallery file is untouched on disk
	_, err := os.Stat(filepath.Join(dir, path.Base(p.Gallery[0])))
	require.NoError(t, err)
}

func TestUpdateProduct_ReplacesOneFileGroup(t *testing.T) {
	g, dir := newTestServer(t)
	p := createProduct(t, g, validFields(), map[string][]string{
		"imageUrl": {"hero.png"},
		"gallery":  {"g1.png"},
	})

	body, ct := multipartBody(t, nil, map[string][]string{"imageUrl": {"hero2.png"}})
	w := doMultipart(g, http.MethodPut, "/products/"+p.ID.Hex(), body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated product.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Len(t, updated.ImageURL, 1)
	require.NotEqual(t, p.ImageURL[0], updated.ImageURL[0])
	require.Equal(t, p.Gallery, updated.Gallery)

	// replaced hero image is cleaned up, gallery file survives
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, path.Base(p.ImageURL[0])))
		return os.IsNotExist(err)
	}, 2*time.Second, 20*time.Millisecond)
	_, err := os.Stat(filepath.Join(dir, path.Base(p.Gallery[0])))
	require.NoError(t, err)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	g, _ := newTestServer(t)
	body, ct := multipartBody(t, map[string]string{"productName": "x"}, nil)
	w := doMultipart(g, http.MethodPut, "/products/64b000000000000000000000", body, ct)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct_RemovesRecordAndFiles(t *testing.T) {
	g, dir := newTestServer(t)
	p := createProduct(t, g, validFields(), map[string][]string{
		"imageUrl": {"hero.png"},
		"gallery":  {"g1.png", "g2.png"},
	})

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products/"+p.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Product deleted successfully")

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+p.ID.Hex(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	require.Eventually(t, func() bool {
		entries, err := os.ReadDir(dir)
		return err == nil && len(entries) == 0
	}, 2*time.Second, 20*time.Millisecond)
}
