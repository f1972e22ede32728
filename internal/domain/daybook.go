package domain

import "context"

// DaybookPage is a free-text journal page keyed by calendar date.
// Pages are upserted whole; unlike entries they carry no sentiment.
type DaybookPage struct {
	Date string `json:"date"`
	Body string `json:"entry"`
}

// DaybookStore abstracts the by-date page collection.
type DaybookStore interface {
	PutPage(ctx context.Context, date, body string) error
	GetPage(ctx context.Context, date string) (DaybookPage, error)
}
