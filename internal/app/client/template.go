package client

import (
	"context"
	"fmt"
	"net/url"

	"hardstore/internal/model"
)

// Template operations against /templates. Rendering happens on the backend;
// the client only supplies variables and receives final text.

func (a *apiClient) GetTemplate(ctx context.Context, typ, lang string) (*model.MessageTemplate, error) {
	var tpl model.MessageTemplate
	path := fmt.Sprintf("/templates/%s/%s", url.PathEscape(typ), url.PathEscape(lang))
	if err := a.get(ctx, path, nil, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (a *apiClient) GetTemplatesByType(ctx context.Context, typ string) ([]model.MessageTemplate, error) {
	var templates []model.MessageTemplate
	if err := a.get(ctx, fmt.Sprintf("/templates/type/%s", url.PathEscape(typ)), nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (a *apiClient) GetTemplatesByLanguage(ctx context.Context, lang string) ([]model.MessageTemplate, error) {
	var templates []model.MessageTemplate
	if err := a.get(ctx, fmt.Sprintf("/templates/language/%s", url.PathEscape(lang)), nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (a *apiClient) GetTemplateMap(ctx context.Context, lang string) (map[string]string, error) {
	var templates map[string]string
	if err := a.get(ctx, fmt.Sprintf("/templates/map/%s", url.PathEscape(lang)), nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// RenderTemplate renders an arbitrary template type with the given variables.
func (a *apiClient) RenderTemplate(ctx context.Context, typ, lang string, variables map[string]string) (string, error) {
	q := url.Values{}
	q.Set("type", typ)
	q.Set("languageCode", lang)
	var rendered string
	if err := a.post(ctx, "/templates/render", q, variables, &rendered); err != nil {
		return "", err
	}
	return rendered, nil
}

// WhatsAppQuoteVars are the placeholder values of the whatsapp-quote template.
type WhatsAppQuoteVars struct {
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// RenderWhatsAppQuote renders the localized whatsapp-quote template.
func (a *apiClient) RenderWhatsAppQuote(ctx context.Context, lang string, vars WhatsAppQuoteVars) (string, error) {
	q := url.Values{}
	q.Set("languageCode", lang)
	var rendered string
	if err := a.post(ctx, "/templates/render/whatsapp-quote", q, vars, &rendered); err != nil {
		return "", err
	}
	return rendered, nil
}

// Admin operations.

func (a *apiClient) CreateTemplate(ctx context.Context, tpl model.MessageTemplate) (*model.MessageTemplate, error) {
	var created model.MessageTemplate
	if err := a.post(ctx, "/templates/admin", nil, tpl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiClient) UpdateTemplate(ctx context.Context, id int64, tpl model.MessageTemplate) (*model.MessageTemplate, error) {
	var updated model.MessageTemplate
	if err := a.put(ctx, fmt.Sprintf("/templates/admin/%d", id), nil, tpl, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *apiClient) DeleteTemplate(ctx context.Context, id int64) error {
	return a.delete(ctx, fmt.Sprintf("/templates/admin/%d", id))
}
