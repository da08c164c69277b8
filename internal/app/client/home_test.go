package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// homeBackend stubs the four endpoints the bundle joins, with per-endpoint
// failure switches.
type homeBackend struct {
	mu   sync.Mutex
	fail map[string]bool
}

func (b *homeBackend) failing(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fail[path]
}

func (b *homeBackend) setFail(path string, v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[path] = v
}

func (b *homeBackend) handler() http.Handler {
	responses := map[string]string{
		"/categories": `[{"id":1,"name":"Pipes","sortOrder":1,"isActive":true}]`,
		"/banners":    `[{"id":7,"title":"Monsoon sale","sortOrder":1,"isActive":true}]`,
		"/config/business": `{"business_name":"Manish Hardware","phone_number":"+977-1-5550123",` +
			`"whatsapp_number":"+977-9800000000","address":"Kathmandu"}`,
		"/languages": `[{"id":1,"code":"en","name":"English","isDefault":true,"isActive":true},` +
			`{"id":2,"code":"ne","name":"Nepali","isActive":true}]`,
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.failing(r.URL.Path) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"backend down"}`))
			return
		}
		body, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	})
}

func newTestLoader(t *testing.T, backend *homeBackend) (*HomeLoader, *Cache) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	log := testLogger()
	cache := NewCache(NewMemoryStore(), log)
	api := newAPIClient(testConfig(srv.URL), log, nil)
	return NewHomeLoader(api, cache, log), cache
}

func TestHomeLoaderLoadsBundle(t *testing.T) {
	backend := &homeBackend{fail: map[string]bool{}}
	loader, cache := newTestLoader(t, backend)

	assert.True(t, loader.Snapshot().Loading())

	bundle, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, bundle.Categories, 1)
	assert.Len(t, bundle.Banners, 1)
	assert.Len(t, bundle.Languages, 2)
	assert.Equal(t, "Manish Hardware", bundle.Config.BusinessName)

	state := loader.Snapshot()
	assert.True(t, state.Ready())
	assert.True(t, state.HasData)
	assert.NoError(t, state.Err)

	// Snapshots were written through to the cache.
	cats, ok := cache.CachedCategories()
	require.True(t, ok)
	assert.Len(t, cats, 1)
	cfg, ok := cache.CachedConfig()
	require.True(t, ok)
	assert.Equal(t, "Manish Hardware", cfg.BusinessName)
	_, ok = cache.LastSync()
	assert.True(t, ok)
}

func TestHomeLoaderAllOrNothing(t *testing.T) {
	// If exactly one of the four fetches fails, the whole bundle fails and no
	// partial data is exposed on a first load.
	paths := []string{"/categories", "/banners", "/config/business", "/languages"}

	for _, failing := range paths {
		t.Run(failing, func(t *testing.T) {
			backend := &homeBackend{fail: map[string]bool{failing: true}}
			loader, _ := newTestLoader(t, backend)

			bundle, err := loader.Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, bundle)

			state := loader.Snapshot()
			assert.True(t, state.Failed())
			assert.False(t, state.HasData)
			assert.Error(t, state.Err)
		})
	}
}

func TestHomeLoaderRefreshKeepsStaleDataOnFailure(t *testing.T) {
	backend := &homeBackend{fail: map[string]bool{}}
	loader, _ := newTestLoader(t, backend)

	_, err := loader.Load(context.Background())
	require.NoError(t, err)

	backend.setFail("/banners", true)
	_, err = loader.Load(context.Background())
	require.Error(t, err)

	state := loader.Snapshot()
	assert.True(t, state.Failed())
	assert.True(t, state.HasData, "previously shown data must survive a failed refresh")
	assert.Len(t, state.Data.Categories, 1)

	// A later successful refresh clears the error again.
	backend.setFail("/banners", false)
	_, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, loader.Snapshot().Ready())
}

func TestHomeLoaderDiscardsResolutionAfterClose(t *testing.T) {
	backend := &homeBackend{fail: map[string]bool{}}
	loader, _ := newTestLoader(t, backend)

	loader.Close()

	bundle, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, bundle)

	// The resolution is returned to the caller but state stays untouched.
	state := loader.Snapshot()
	assert.True(t, state.Loading())
	assert.False(t, state.HasData)
}
