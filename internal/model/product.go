package model

// ProductTranslation holds the localized name/description for one language.
// The backend keeps at most one translation per (product, language) pair.
type ProductTranslation struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"productId"`
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

type Product struct {
	ID             int64                `json:"id"`
	CategoryID     int64                `json:"categoryId"`
	Brand          string               `json:"brand"`
	ImageURL       string               `json:"imageUrl"`
	TechnicalSpecs string               `json:"technicalSpecs"`
	UsageInfo      string               `json:"usageInfo"`
	IsActive       bool                 `json:"isActive"`
	Translations   []ProductTranslation `json:"translations,omitempty"`
	CreatedAt      string               `json:"createdAt,omitempty"`
	UpdatedAt      string               `json:"updatedAt,omitempty"`
}

// DisplayName returns the translated name for lang, falling back to the brand
// when no translation for that language is present.
func (p Product) DisplayName(lang string) string {
	for _, tr := range p.Translations {
		if tr.LanguageCode == lang && tr.Name != "" {
			return tr.Name
		}
	}
	return p.Brand
}

// Description returns the translated description for lang, or "" when absent.
func (p Product) Description(lang string) string {
	for _, tr := range p.Translations {
		if tr.LanguageCode == lang {
			return tr.Description
		}
	}
	return ""
}

// Page is the backend pagination envelope shared by all paginated endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}
