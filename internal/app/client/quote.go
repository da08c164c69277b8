package client

import (
	"context"
	"fmt"
	"net/url"

	"hardstore/internal/model"
)

// Quote operations against /quotes. Submit is the only public operation; the
// rest require an admin token.

func (a *apiClient) SubmitQuote(ctx context.Context, quote model.QuoteRequest) (*model.QuoteRequest, error) {
	var created model.QuoteRequest
	if err := a.post(ctx, "/quotes", nil, quote, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiClient) ListQuotes(ctx context.Context, pq PageQuery) (*model.Page[model.QuoteRequest], error) {
	var page model.Page[model.QuoteRequest]
	if err := a.get(ctx, "/quotes", pq.encode(nil), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *apiClient) ListRecentQuotes(ctx context.Context) ([]model.QuoteRequest, error) {
	var quotes []model.QuoteRequest
	if err := a.get(ctx, "/quotes/recent", nil, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (a *apiClient) GetQuote(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	var quote model.QuoteRequest
	if err := a.get(ctx, fmt.Sprintf("/quotes/%d", id), nil, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (a *apiClient) ListQuotesByStatus(ctx context.Context, status model.QuoteStatus, pq PageQuery) (*model.Page[model.QuoteRequest], error) {
	var page model.Page[model.QuoteRequest]
	if err := a.get(ctx, fmt.Sprintf("/quotes/status/%s", url.PathEscape(string(status))), pq.encode(nil), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *apiClient) SearchQuotes(ctx context.Context, query string, pq PageQuery) (*model.Page[model.QuoteRequest], error) {
	q := pq.encode(nil)
	q.Set("q", query)
	var page model.Page[model.QuoteRequest]
	if err := a.get(ctx, "/quotes/search", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *apiClient) GetQuoteStatistics(ctx context.Context) (*model.QuoteStatistics, error) {
	var stats model.QuoteStatistics
	if err := a.get(ctx, "/quotes/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *apiClient) UpdateQuote(ctx context.Context, id int64, quote model.QuoteRequest) (*model.QuoteRequest, error) {
	var updated model.QuoteRequest
	if err := a.put(ctx, fmt.Sprintf("/quotes/%d", id), nil, quote, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) UpdateQuoteStatus(ctx context.Context, id int64, status model.QuoteStatus) (*model.QuoteRequest, error) {
	q := url.Values{}
	q.Set("status", string(status))
	var updated model.QuoteRequest
	if err := a.patch(ctx, fmt.Sprintf("/quotes/%d/status", id), q, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) MarkQuoteContacted(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	var updated model.QuoteRequest
	if err := a.patch(ctx, fmt.Sprintf("/quotes/%d/contacted", id), nil, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) MarkQuoteCompleted(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	var updated model.QuoteRequest
	if err := a.patch(ctx, fmt.Sprintf("/quotes/%d/completed", id), nil, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) DeleteQuote(ctx context.Context, id int64) error {
	return a.delete(ctx, fmt.Sprintf("/quotes/%d", id))
}

func (a *apiClient) ListQuotesByLanguage(ctx context.Context, lang string) ([]model.QuoteRequest, error) {
	var quotes []model.QuoteRequest
	if err := a.get(ctx, fmt.Sprintf("/quotes/language/%s", url.PathEscape(lang)), nil, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}
