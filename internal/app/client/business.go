package client

import (
	"context"
	"fmt"
	"net/url"

	"hardstore/internal/model"
)

// Business config operations against /config.

func (a *apiClient) GetConfigMap(ctx context.Context) (map[string]string, error) {
	var configs map[string]string
	if err := a.get(ctx, "/config", nil, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func (a *apiClient) GetBusinessConfig(ctx context.Context) (*model.BusinessConfig, error) {
	var cfg model.BusinessConfig
	if err := a.get(ctx, "/config/business", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (a *apiClient) GetConfigValue(ctx context.Context, key string) (string, error) {
	var value string
	if err := a.get(ctx, fmt.Sprintf("/config/%s/value", url.PathEscape(key)), nil, &value); err != nil {
		return "", err
	}
	return value, nil
}

// GetConfigValueOr asks the backend for a key's value with a server-side
// default substituted for missing keys.
func (a *apiClient) GetConfigValueOr(ctx context.Context, key, defaultValue string) (string, error) {
	var value string
	path := fmt.Sprintf("/config/%s/value/%s", url.PathEscape(key), url.PathEscape(defaultValue))
	if err := a.get(ctx, path, nil, &value); err != nil {
		return "", err
	}
	return value, nil
}

// Admin operations.

func (a *apiClient) SaveConfig(ctx context.Context, key, value string) (*model.AppConfig, error) {
	body := struct {
		Value string `json:"value"`
	}{Value: value}
	var saved model.AppConfig
	if err := a.put(ctx, fmt.Sprintf("/config/admin/%s", url.PathEscape(key)), nil, body, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (a *apiClient) DeleteConfig(ctx context.Context, key string) error {
	return a.delete(ctx, fmt.Sprintf("/config/admin/key/%s", url.PathEscape(key)))
}

func (a *apiClient) BatchSaveConfigs(ctx context.Context, configs map[string]string) error {
	return a.post(ctx, "/config/admin/batch", nil, configs, nil)
}
