package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"hardstore/internal/model"
)

// HomeBundle is everything the landing screen needs, joined from four
// independent fetches.
type HomeBundle struct {
	Categories []model.Category
	Banners    []model.Banner
	Config     model.BusinessConfig
	Languages  []model.SupportedLanguage
	FetchedAt  time.Time
}

// HomeLoader assembles the home bundle with all-or-nothing semantics: if any
// of the four fetches fails, the whole bundle is reported failed and partial
// results are discarded. A landing screen with categories but no contact info
// is worse than a unified retry prompt.
type HomeLoader struct {
	api   *apiClient
	cache *Cache
	log   *slog.Logger

	mu     sync.Mutex
	state  ViewState[HomeBundle]
	closed bool
}

func NewHomeLoader(api *apiClient, cache *Cache, log *slog.Logger) *HomeLoader {
	return &HomeLoader{
		api:   api,
		cache: cache,
		log:   log,
		state: ViewState[HomeBundle]{Phase: PhaseLoading},
	}
}

// Snapshot returns the current view state.
func (l *HomeLoader) Snapshot() ViewState[HomeBundle] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Close marks the consumer gone; any in-flight load still resolves but its
// result is discarded instead of updating state.
func (l *HomeLoader) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// Load fetches the bundle. The first call runs as the initial load; later
// calls are refreshes that keep the previously shown data visible until they
// resolve, and on failure surface the error without discarding it.
func (l *HomeLoader) Load(ctx context.Context) (*HomeBundle, error) {
	l.mu.Lock()
	if l.state.HasData {
		l.state.Phase = PhaseRefreshing
	} else {
		l.state.Phase = PhaseLoading
	}
	l.state.Err = nil
	l.mu.Unlock()

	bundle, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		// Consumer is gone; drop the resolution on the floor.
		l.log.Debug("discarding home bundle resolution after close")
		if err != nil {
			return nil, err
		}
		return bundle, nil
	}

	if err != nil {
		l.state.Phase = PhaseFailed
		l.state.Err = err
		// Previously shown data, if any, stays in place (stale but
		// displayable); on a first load there is nothing to keep.
		return nil, err
	}

	l.state = ViewState[HomeBundle]{Phase: PhaseReady, Data: *bundle, HasData: true}
	return bundle, nil
}

// fetch issues the four underlying fetches concurrently. They are independent
// and may resolve in any order; the bundle resolves once all four have.
func (l *HomeLoader) fetch(ctx context.Context) (*HomeBundle, error) {
	var (
		categories []model.Category
		banners    []model.Banner
		business   *model.BusinessConfig
		languages  []model.SupportedLanguage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if categories, err = l.api.ListCategories(gctx); err != nil {
			l.log.Warn("home bundle: categories fetch failed", "error", err)
			return fmt.Errorf("categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if banners, err = l.api.ListBanners(gctx); err != nil {
			l.log.Warn("home bundle: banners fetch failed", "error", err)
			return fmt.Errorf("banners: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if business, err = l.api.GetBusinessConfig(gctx); err != nil {
			l.log.Warn("home bundle: business config fetch failed", "error", err)
			return fmt.Errorf("business config: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if languages, err = l.api.ListLanguages(gctx); err != nil {
			l.log.Warn("home bundle: languages fetch failed", "error", err)
			return fmt.Errorf("languages: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := &HomeBundle{
		Categories: categories,
		Banners:    banners,
		Config:     *business,
		Languages:  languages,
		FetchedAt:  time.Now(),
	}

	l.persist(bundle)
	return bundle, nil
}

// persist writes the snapshot keys best-effort; a cache write failure never
// fails the load.
func (l *HomeLoader) persist(bundle *HomeBundle) {
	if err := l.cache.SetCachedCategories(bundle.Categories); err != nil {
		l.log.Warn("failed to persist categories snapshot", "error", err)
	}
	if err := l.cache.SetCachedConfig(bundle.Config); err != nil {
		l.log.Warn("failed to persist config snapshot", "error", err)
	}
	if err := l.cache.SetLastSync(bundle.FetchedAt); err != nil {
		l.log.Warn("failed to persist last-sync timestamp", "error", err)
	}
}
