package model

import "strings"

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "PENDING"
	QuoteStatusContacted QuoteStatus = "CONTACTED"
	QuoteStatusCompleted QuoteStatus = "COMPLETED"
)

// ParseQuoteStatus accepts either casing; the backend serializes upper-case
// while older clients sent lower-case values.
func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch QuoteStatus(strings.ToUpper(s)) {
	case QuoteStatusPending, QuoteStatusContacted, QuoteStatusCompleted:
		return QuoteStatus(strings.ToUpper(s)), true
	}
	return "", false
}

// QuoteRequest is created by the client and owned by the backend thereafter;
// the client never mutates status.
type QuoteRequest struct {
	ID           int64       `json:"id,omitempty"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	ProductID    *int64      `json:"productId,omitempty"`
	Quantity     string      `json:"quantity"`
	Location     string      `json:"location"`
	LanguageCode string      `json:"languageCode,omitempty"`
	Status       QuoteStatus `json:"status,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
	UpdatedAt    string      `json:"updatedAt,omitempty"`
}

type QuoteStatistics struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Contacted int64 `json:"contacted"`
	Completed int64 `json:"completed"`
}
