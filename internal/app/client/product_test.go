package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, baseURL string) *App {
	t.Helper()
	cfg := testConfig(baseURL)
	cfg.CachePath = filepath.Join(t.TempDir(), "cache.db")
	app, err := New(cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestCategoryProductsAppliesDefaultPagination(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/category/3", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"content": [{"id": 1, "name": "PVC Pipe 2in", "categoryId": 3}],
			"totalElements": 1,
			"totalPages": 1,
			"size": 50,
			"number": 0,
			"first": true,
			"last": true,
			"empty": false
		}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	page, err := app.CategoryProducts(context.Background(), 3, PageQuery{})
	require.NoError(t, err)

	assert.Equal(t, "0", gotQuery.Get("page"))
	assert.Equal(t, "50", gotQuery.Get("size"))
	assert.Equal(t, "id", gotQuery.Get("sortBy"))
	assert.Equal(t, "asc", gotQuery.Get("sortDir"))

	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(1), page.Content[0].ID)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.True(t, page.First)
	assert.True(t, page.Last)
	assert.False(t, page.Empty)
}

func TestCategoryProductsExplicitPaginationPassesThrough(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"content": [], "totalElements": 0, "totalPages": 0, "size": 10, "number": 2, "first": false, "last": true, "empty": true}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	_, err := app.CategoryProducts(context.Background(), 3, PageQuery{Page: 2, Size: 10, SortBy: "name", SortDir: "desc"})
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "10", gotQuery.Get("size"))
	assert.Equal(t, "name", gotQuery.Get("sortBy"))
	assert.Equal(t, "desc", gotQuery.Get("sortDir"))
}

func TestCategoryProductsExplicitPageWithoutSize(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"content": [], "totalElements": 0, "totalPages": 0, "size": 20, "number": 2, "first": false, "last": true, "empty": true}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	// A requested page must reach the backend even when no size is given;
	// the backend then applies its own default size.
	_, err := app.CategoryProducts(context.Background(), 3, PageQuery{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.False(t, gotQuery.Has("size"))
}

func TestSearchProductsScopesToCategory(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/search", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"content": [], "totalElements": 0, "totalPages": 0, "size": 50, "number": 0, "first": true, "last": true, "empty": true}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	catID := int64(7)
	_, err := app.SearchProducts(context.Background(), "cement", &catID, PageQuery{})
	require.NoError(t, err)

	assert.Equal(t, "cement", gotQuery.Get("q"))
	assert.Equal(t, "7", gotQuery.Get("categoryId"))
	assert.Equal(t, "0", gotQuery.Get("page"))
	assert.Equal(t, "50", gotQuery.Get("size"))
}

func TestProductDisplayNameFallsBackAcrossLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/5", r.URL.Path)
		w.Write([]byte(`{
			"id": 5,
			"brand": "Tata GI Wire",
			"translations": [
				{"languageCode": "ne", "name": "जीआई तार"}
			]
		}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	product, err := app.Product(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "जीआई तार", product.DisplayName("ne"))
	assert.Equal(t, "Tata GI Wire", product.DisplayName("fr"), "unknown language falls back to the brand name")
}
