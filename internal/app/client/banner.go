package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"hardstore/internal/model"
)

// Banner operations against /banners.

func (a *apiClient) ListBanners(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	if err := a.get(ctx, "/banners", nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (a *apiClient) GetBanner(ctx context.Context, id int64) (*model.Banner, error) {
	var banner model.Banner
	if err := a.get(ctx, fmt.Sprintf("/banners/%d", id), nil, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// Admin operations.

func (a *apiClient) ListAllBanners(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	if err := a.get(ctx, "/banners/all", nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (a *apiClient) CreateBanner(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	var created model.Banner
	if err := a.post(ctx, "/banners", nil, banner, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiClient) UpdateBanner(ctx context.Context, id int64, banner model.Banner) (*model.Banner, error) {
	var updated model.Banner
	if err := a.put(ctx, fmt.Sprintf("/banners/%d", id), nil, banner, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) DeleteBanner(ctx context.Context, id int64) error {
	return a.delete(ctx, fmt.Sprintf("/banners/%d", id))
}

func (a *apiClient) UpdateBannerSortOrder(ctx context.Context, id int64, sortOrder int) error {
	q := url.Values{}
	q.Set("sortOrder", strconv.Itoa(sortOrder))
	return a.put(ctx, fmt.Sprintf("/banners/%d/sort", id), q, nil, nil)
}
