package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"hardstore/internal/model"
)

// Product operations against /products. All list endpoints are paginated with
// the shared envelope; the backend caps size at 100 on its side.

func (a *apiClient) ListProducts(ctx context.Context, pq PageQuery) (*model.Page[model.Product], error) {
	var page model.Page[model.Product]
	if err := a.get(ctx, "/products", pq.encode(nil), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *apiClient) ListProductsByCategory(ctx context.Context, categoryID int64, pq PageQuery) (*model.Page[model.Product], error) {
	var page model.Page[model.Product]
	if err := a.get(ctx, fmt.Sprintf("/products/category/%d", categoryID), pq.encode(nil), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *apiClient) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := a.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (a *apiClient) GetProductLocalized(ctx context.Context, id int64, lang string) (*model.Product, error) {
	var product model.Product
	if err := a.get(ctx, fmt.Sprintf("/products/%d/lang/%s", id, url.PathEscape(lang)), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts searches by free-text query, optionally scoped to a category.
func (a *apiClient) SearchProducts(ctx context.Context, query string, categoryID *int64, pq PageQuery) (*model.Page[model.Product], error) {
	q := pq.encode(nil)
	q.Set("q", query)
	if categoryID != nil {
		q.Set("categoryId", strconv.FormatInt(*categoryID, 10))
	}
	var page model.Page[model.Product]
	if err := a.get(ctx, "/products/search", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *apiClient) GetProductTranslations(ctx context.Context, productID int64) ([]model.ProductTranslation, error) {
	var translations []model.ProductTranslation
	if err := a.get(ctx, fmt.Sprintf("/products/%d/translations", productID), nil, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}

func (a *apiClient) CountProductsInCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	if err := a.get(ctx, fmt.Sprintf("/products/count/category/%d", categoryID), nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// Admin operations.

func (a *apiClient) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	var created model.Product
	if err := a.post(ctx, "/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiClient) UpdateProduct(ctx context.Context, id int64, product model.Product) (*model.Product, error) {
	var updated model.Product
	if err := a.put(ctx, fmt.Sprintf("/products/%d", id), nil, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) DeleteProduct(ctx context.Context, id int64) error {
	return a.delete(ctx, fmt.Sprintf("/products/%d", id))
}

func (a *apiClient) AddProductTranslation(ctx context.Context, productID int64, tr model.ProductTranslation) (*model.ProductTranslation, error) {
	var created model.ProductTranslation
	if err := a.post(ctx, fmt.Sprintf("/products/%d/translations", productID), nil, tr, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiClient) UpdateProductTranslation(ctx context.Context, productID int64, lang string, tr model.ProductTranslation) (*model.ProductTranslation, error) {
	var updated model.ProductTranslation
	if err := a.put(ctx, fmt.Sprintf("/products/%d/translations/%s", productID, url.PathEscape(lang)), nil, tr, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) DeleteProductTranslation(ctx context.Context, productID int64, lang string) error {
	return a.delete(ctx, fmt.Sprintf("/products/%d/translations/%s", productID, url.PathEscape(lang)))
}
