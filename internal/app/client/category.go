package client

import (
	"context"
	"fmt"

	"hardstore/internal/model"
)

// Category operations against /categories. Public endpoints return only
// active categories; the backend does the filtering.

func (a *apiClient) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := a.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (a *apiClient) ListCategoriesOrdered(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := a.get(ctx, "/categories/ordered", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (a *apiClient) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	if err := a.get(ctx, fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Admin operations.

func (a *apiClient) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	var created model.Category
	if err := a.post(ctx, "/categories", nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiClient) UpdateCategory(ctx context.Context, id int64, category model.Category) (*model.Category, error) {
	var updated model.Category
	if err := a.put(ctx, fmt.Sprintf("/categories/%d", id), nil, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) DeleteCategory(ctx context.Context, id int64) error {
	return a.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
