package client

import (
	"context"
	"fmt"

	"hardstore/internal/model"
)

// Auth operations against /auth/*. These are an opaque pass-through: the
// client stores the token it gets back and otherwise forwards whatever the
// backend returns.

func (a *apiClient) Login(ctx context.Context, creds model.LoginCredentials) (*model.LoginResponse, error) {
	var resp model.LoginResponse
	if err := a.post(ctx, "/auth/login", nil, creds, &resp); err != nil {
		return nil, err
	}
	a.SetToken(resp.AccessToken)
	return &resp, nil
}

func (a *apiClient) Register(ctx context.Context, req model.RegisterRequest) error {
	return a.post(ctx, "/auth/register", nil, req, nil)
}

func (a *apiClient) CurrentUser(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := a.get(ctx, "/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *apiClient) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error {
	return a.post(ctx, "/auth/change-password", nil, req, nil)
}

func (a *apiClient) UpdateProfile(ctx context.Context, fullName, email string) error {
	body := struct {
		FullName string `json:"fullName,omitempty"`
		Email    string `json:"email,omitempty"`
	}{FullName: fullName, Email: email}
	return a.put(ctx, "/auth/profile", nil, body, nil)
}

// Admin user management.

func (a *apiClient) ListUsers(ctx context.Context) ([]model.AdminUser, error) {
	var users []model.AdminUser
	if err := a.get(ctx, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *apiClient) DeactivateUser(ctx context.Context, id int64) error {
	return a.put(ctx, fmt.Sprintf("/auth/users/%d/deactivate", id), nil, nil, nil)
}
