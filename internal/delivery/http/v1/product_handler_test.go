package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-scales-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	router := setupRouter(&fakeMailer{})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestListProducts(t *testing.T) {
	w, body := getJSON(t, "/api/products")
	assert.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(body["data"], &products))
	assert.Len(t, products, 6)
	assert.Equal(t, "digital-table-top", products[0].Slug)
}

func TestGetProduct(t *testing.T) {
	w, body := getJSON(t, "/api/products/industrial-platform")
	assert.Equal(t, http.StatusOK, w.Code)

	var product domain.Product
	require.NoError(t, json.Unmarshal(body["data"], &product))
	assert.Equal(t, "Industrial Platform Weighing Scales", product.Title)
	assert.Equal(t, "Industrial", product.Category)
}

func TestGetProduct_NotFound(t *testing.T) {
	w, body := getJSON(t, "/api/products/no-such-scale")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var msg string
	require.NoError(t, json.Unmarshal(body["error"], &msg))
	assert.Equal(t, "Product not found", msg)
}

func TestListCategories(t *testing.T) {
	w, body := getJSON(t, "/api/categories")
	assert.Equal(t, http.StatusOK, w.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(body["data"], &categories))
	assert.Len(t, categories, 6)
	assert.Contains(t, categories, "Heavy Industrial")
}

func TestHealth(t *testing.T) {
	w, _ := getJSON(t, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
}
