package model

type SupportedLanguage struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName,omitempty"`
	IsDefault  bool   `json:"isDefault"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// DefaultLanguage picks the first active language flagged default. The backend
// is assumed to keep at most one default but never guarantees it, so this is a
// data-integrity assumption, not an enforced invariant.
func DefaultLanguage(langs []SupportedLanguage, fallback string) string {
	for _, l := range langs {
		if l.IsDefault && l.IsActive {
			return l.Code
		}
	}
	return fallback
}

type MessageTemplate struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	LanguageCode string `json:"languageCode"`
	Template     string `json:"template"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
