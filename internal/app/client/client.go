package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"hardstore/internal/app/client/config"
	"hardstore/internal/model"
)

// App wires the client together: config, cache, transport, the home loader,
// the quote workflow and the link launcher. Commands talk to App, not to the
// pieces directly.
type App struct {
	config   *config.Config
	log      *slog.Logger
	cache    *Cache
	api      *apiClient
	home     *HomeLoader
	quotes   *QuoteFlow
	launcher *Launcher
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	var store Store
	sqliteStore, err := NewSQLiteStore(cfg.CachePath)
	if err != nil {
		log.Warn("failed to open sqlite cache, falling back to memory", "error", err)
		store = NewMemoryStore()
	} else {
		store = sqliteStore
	}
	cache := NewCache(store, log)

	language := func() string {
		if lang := cache.Language(); lang != "" {
			return lang
		}
		return cfg.DefaultLanguage
	}

	api := newAPIClient(cfg, log, language)

	app := &App{
		config:   cfg,
		log:      log,
		cache:    cache,
		api:      api,
		launcher: NewLauncher(nil, log),
	}
	app.home = NewHomeLoader(api, cache, log)
	app.quotes = NewQuoteFlow(api, log, language)

	// Reattach a previously stored admin token, if any.
	if token := cache.Token(); token != "" {
		api.SetToken(token)
		log.Debug("auth token loaded from cache")
	}

	return app, nil
}

// Close releases the local cache store.
func (a *App) Close() error {
	a.home.Close()
	return a.cache.Close()
}

func (a *App) Home() *HomeLoader { return a.home }

func (a *App) Quotes() *QuoteFlow { return a.quotes }

func (a *App) Launcher() *Launcher { return a.launcher }

func (a *App) Cache() *Cache { return a.cache }

func (a *App) Config() *config.Config { return a.config }

// Language returns the effective language preference.
func (a *App) Language() string {
	if lang := a.cache.Language(); lang != "" {
		return lang
	}
	return a.config.DefaultLanguage
}

// SetLanguage persists the language preference, validating the code against
// the backend's active languages when the backend is reachable. Offline, the
// preference is accepted as-is.
func (a *App) SetLanguage(ctx context.Context, code string) error {
	languages, err := a.api.ListLanguages(ctx)
	if err != nil {
		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			return err
		}
		a.log.Warn("cannot verify language against backend, accepting as-is", "code", code)
		return a.cache.SetLanguage(code)
	}

	for _, l := range languages {
		if l.Code == code && l.IsActive {
			return a.cache.SetLanguage(code)
		}
	}
	return fmt.Errorf("language %q is not supported", code)
}

// Catalog pass-throughs used by the commands.

func (a *App) Categories(ctx context.Context) ([]model.Category, error) {
	return a.api.ListCategoriesOrdered(ctx)
}

func (a *App) Category(ctx context.Context, id int64) (*model.Category, error) {
	return a.api.GetCategory(ctx, id)
}

// CategoryProducts lists a category's products with the category-screen
// defaults when pq is the zero value: page 0, configured size, id ascending.
func (a *App) CategoryProducts(ctx context.Context, categoryID int64, pq PageQuery) (*model.Page[model.Product], error) {
	if pq == (PageQuery{}) {
		pq = DefaultPageQuery(a.config.PageSize)
	}
	return a.api.ListProductsByCategory(ctx, categoryID, pq)
}

func (a *App) Product(ctx context.Context, id int64) (*model.Product, error) {
	return a.api.GetProduct(ctx, id)
}

func (a *App) ProductLocalized(ctx context.Context, id int64) (*model.Product, error) {
	return a.api.GetProductLocalized(ctx, id, a.Language())
}

func (a *App) SearchProducts(ctx context.Context, query string, categoryID *int64, pq PageQuery) (*model.Page[model.Product], error) {
	if pq == (PageQuery{}) {
		pq = DefaultPageQuery(a.config.PageSize)
	}
	return a.api.SearchProducts(ctx, query, categoryID, pq)
}

func (a *App) Banners(ctx context.Context) ([]model.Banner, error) {
	return a.api.ListBanners(ctx)
}

func (a *App) Languages(ctx context.Context) ([]model.SupportedLanguage, error) {
	return a.api.ListLanguages(ctx)
}

// BusinessConfig fetches the business facts with configured defaults
// substituted for missing fields. On network failure it falls back to the
// cached snapshot before giving up.
func (a *App) BusinessConfig(ctx context.Context) (model.BusinessConfig, error) {
	defaults := model.BusinessConfig{
		BusinessName:  a.config.BusinessName,
		PhoneNumber:   a.config.Phone,
		WhatsApp:      a.config.WhatsApp,
		Address:       a.config.Address,
		BusinessHours: a.config.Hours,
	}

	cfg, err := a.api.GetBusinessConfig(ctx)
	if err != nil {
		if cached, ok := a.cache.CachedConfig(); ok {
			a.log.Debug("business config fetched from cache snapshot")
			return cached.WithDefaults(defaults), nil
		}
		return model.BusinessConfig{}, err
	}

	if cerr := a.cache.SetCachedConfig(*cfg); cerr != nil {
		a.log.Warn("failed to persist config snapshot", "error", cerr)
	}
	return cfg.WithDefaults(defaults), nil
}

// AboutText resolves the localized "about" template, with a plain fallback
// when the backend has none for the current language.
func (a *App) AboutText(ctx context.Context) (string, error) {
	tpl, err := a.api.GetTemplate(ctx, "about", a.Language())
	if err == nil && tpl.Template != "" {
		return tpl.Template, nil
	}
	if err != nil {
		a.log.Debug("about template unavailable, using fallback", "error", err)
	}
	return fmt.Sprintf("%s - your trusted hardware supplier.\n%s\nHours: %s",
		a.config.BusinessName, a.config.Address, a.config.Hours), nil
}

// SubmitQuote runs the quote workflow and, when notify is set, hands the
// resolved message to WhatsApp using the business number. The returned bool
// reports whether a WhatsApp open was attempted successfully; the workflow's
// own success is the error being nil.
func (a *App) SubmitQuote(ctx context.Context, form QuoteForm, notify bool) (*SubmitResult, bool, error) {
	result, err := a.quotes.Submit(ctx, form)
	if err != nil {
		return nil, false, err
	}
	if !notify {
		return result, false, nil
	}

	business, err := a.BusinessConfig(ctx)
	number := a.config.WhatsApp
	if err == nil && business.WhatsApp != "" {
		number = business.WhatsApp
	}
	opened := a.launcher.OpenWhatsApp(number, result.Message)
	return result, opened, nil
}

// RefreshSnapshots re-fetches the home bundle to repopulate the cached
// snapshots, returning the new last-sync time.
func (a *App) RefreshSnapshots(ctx context.Context) (*HomeBundle, error) {
	return a.home.Load(ctx)
}

// Auth pass-throughs.

func (a *App) Login(ctx context.Context, creds model.LoginCredentials) (*model.LoginResponse, error) {
	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := a.cache.SetToken(resp.AccessToken); err != nil {
		a.log.Warn("failed to persist auth token", "error", err)
	}
	return resp, nil
}

func (a *App) Logout() error {
	a.api.SetToken("")
	return a.cache.SetToken("")
}

func (a *App) Register(ctx context.Context, req model.RegisterRequest) error {
	return a.api.Register(ctx, req)
}

func (a *App) Profile(ctx context.Context) (*model.UserProfile, error) {
	return a.api.CurrentUser(ctx)
}

// Quote admin pass-throughs.

func (a *App) QuoteList(ctx context.Context, pq PageQuery) (*model.Page[model.QuoteRequest], error) {
	if pq == (PageQuery{}) {
		pq = DefaultPageQuery(a.config.PageSize)
	}
	return a.api.ListQuotes(ctx, pq)
}

func (a *App) QuotesByStatus(ctx context.Context, status model.QuoteStatus, pq PageQuery) (*model.Page[model.QuoteRequest], error) {
	if pq == (PageQuery{}) {
		pq = DefaultPageQuery(a.config.PageSize)
	}
	return a.api.ListQuotesByStatus(ctx, status, pq)
}

func (a *App) QuoteStatistics(ctx context.Context) (*model.QuoteStatistics, error) {
	return a.api.GetQuoteStatistics(ctx)
}
