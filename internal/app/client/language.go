package client

import (
	"context"
	"fmt"
	"net/url"

	"hardstore/internal/model"
)

// Language operations against /languages.

func (a *apiClient) ListLanguages(ctx context.Context) ([]model.SupportedLanguage, error) {
	var languages []model.SupportedLanguage
	if err := a.get(ctx, "/languages", nil, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

func (a *apiClient) GetDefaultLanguage(ctx context.Context) (*model.SupportedLanguage, error) {
	var language model.SupportedLanguage
	if err := a.get(ctx, "/languages/default", nil, &language); err != nil {
		return nil, err
	}
	return &language, nil
}

func (a *apiClient) GetLanguage(ctx context.Context, code string) (*model.SupportedLanguage, error) {
	var language model.SupportedLanguage
	if err := a.get(ctx, fmt.Sprintf("/languages/%s", url.PathEscape(code)), nil, &language); err != nil {
		return nil, err
	}
	return &language, nil
}

func (a *apiClient) IsLanguageSupported(ctx context.Context, code string) (bool, error) {
	var supported bool
	if err := a.get(ctx, fmt.Sprintf("/languages/%s/supported", url.PathEscape(code)), nil, &supported); err != nil {
		return false, err
	}
	return supported, nil
}

// Admin operations.

func (a *apiClient) CreateLanguage(ctx context.Context, language model.SupportedLanguage) (*model.SupportedLanguage, error) {
	var created model.SupportedLanguage
	if err := a.post(ctx, "/languages/admin", nil, language, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiClient) SetDefaultLanguage(ctx context.Context, code string) error {
	return a.put(ctx, fmt.Sprintf("/languages/admin/default/%s", url.PathEscape(code)), nil, nil, nil)
}

func (a *apiClient) UpdateLanguage(ctx context.Context, id int64, language model.SupportedLanguage) (*model.SupportedLanguage, error) {
	var updated model.SupportedLanguage
	if err := a.put(ctx, fmt.Sprintf("/languages/admin/%d", id), nil, language, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) DeleteLanguage(ctx context.Context, id int64) error {
	return a.delete(ctx, fmt.Sprintf("/languages/admin/%d", id))
}
