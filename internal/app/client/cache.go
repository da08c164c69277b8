package client

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"hardstore/internal/model"
)

// Fixed storage keys shared with the original mobile client.
const (
	keyAuthToken        = "auth_token"
	keyUserLanguage     = "user-language"
	keyUserPreferences  = "user_preferences"
	keyCachedCategories = "cached_categories"
	keyCachedProducts   = "cached_products"
	keyCachedConfig     = "cached_config"
	keyLastSync         = "last_sync"
)

// Store is key-value persistence for cached snapshots and preferences.
// Values are opaque JSON blobs. Writes to the same key from two in-flight
// operations are last-write-wins with no ordering guarantee, and there are no
// transactional guarantees across keys; this matches the original design and
// is a known limitation, not an oversight.
type Store interface {
	Get(key string, out any) (bool, error)
	Put(key string, value any) error
	Delete(key string) error
	Clear() error
	Close() error
}

// SQLiteStore persists the key-value pairs in a single local SQLite table.
type SQLiteStore struct {
	db *sqlx.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string, out any) (bool, error) {
	var raw []byte
	err := s.db.Get(&raw, `SELECT value FROM kv_store WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache key %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode cache key %q: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache key %q: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, raw, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write cache key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete cache key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM kv_store`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is the fallback when the SQLite file cannot be opened; the
// client stays usable, only the cache does not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode cache key %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache key %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.data = make(map[string][]byte)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Cache layers the typed snapshot and preference accessors over a Store.
// Reads are best-effort: a missing or broken value comes back as the zero
// value, never as a failure that blocks a screen.
type Cache struct {
	store Store
	log   *slog.Logger
}

func NewCache(store Store, log *slog.Logger) *Cache {
	return &Cache{store: store, log: log}
}

func (c *Cache) Token() string {
	var token string
	if _, err := c.store.Get(keyAuthToken, &token); err != nil {
		c.log.Warn("failed to read auth token from cache", "error", err)
	}
	return token
}

func (c *Cache) SetToken(token string) error {
	if token == "" {
		return c.store.Delete(keyAuthToken)
	}
	return c.store.Put(keyAuthToken, token)
}

// Language returns the persisted language preference, or "" when none is set.
func (c *Cache) Language() string {
	var lang string
	if _, err := c.store.Get(keyUserLanguage, &lang); err != nil {
		c.log.Warn("failed to read language preference from cache", "error", err)
	}
	return lang
}

func (c *Cache) SetLanguage(code string) error {
	return c.store.Put(keyUserLanguage, code)
}

func (c *Cache) Preferences() map[string]string {
	prefs := map[string]string{}
	if _, err := c.store.Get(keyUserPreferences, &prefs); err != nil {
		c.log.Warn("failed to read preferences from cache", "error", err)
	}
	return prefs
}

func (c *Cache) SetPreferences(prefs map[string]string) error {
	return c.store.Put(keyUserPreferences, prefs)
}

// CachedCategories returns the last categories snapshot, if any. A snapshot
// stays valid until overwritten by the next successful fetch; staleness is
// not bounded.
func (c *Cache) CachedCategories() ([]model.Category, bool) {
	var categories []model.Category
	ok, err := c.store.Get(keyCachedCategories, &categories)
	if err != nil {
		c.log.Warn("failed to read categories snapshot", "error", err)
		return nil, false
	}
	return categories, ok
}

func (c *Cache) SetCachedCategories(categories []model.Category) error {
	return c.store.Put(keyCachedCategories, categories)
}

func (c *Cache) CachedProducts() ([]model.Product, bool) {
	var products []model.Product
	ok, err := c.store.Get(keyCachedProducts, &products)
	if err != nil {
		c.log.Warn("failed to read products snapshot", "error", err)
		return nil, false
	}
	return products, ok
}

func (c *Cache) SetCachedProducts(products []model.Product) error {
	return c.store.Put(keyCachedProducts, products)
}

func (c *Cache) CachedConfig() (*model.BusinessConfig, bool) {
	var cfg model.BusinessConfig
	ok, err := c.store.Get(keyCachedConfig, &cfg)
	if err != nil {
		c.log.Warn("failed to read config snapshot", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &cfg, true
}

func (c *Cache) SetCachedConfig(cfg model.BusinessConfig) error {
	return c.store.Put(keyCachedConfig, cfg)
}

func (c *Cache) LastSync() (time.Time, bool) {
	var ts string
	ok, err := c.store.Get(keyLastSync, &ts)
	if err != nil || !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (c *Cache) SetLastSync(t time.Time) error {
	return c.store.Put(keyLastSync, t.UTC().Format(time.RFC3339))
}

func (c *Cache) Clear() error {
	return c.store.Clear()
}

func (c *Cache) Close() error {
	return c.store.Close()
}
