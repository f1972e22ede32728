package domain

import (
	"context"
	"fmt"
	"time"
)

// Sentiment is the emotional tone derived from an entry's body text.
// It is a closed enumeration; values never come from user input directly.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// ParseSentiment validates a raw label read from a document store.
// Documents carrying anything outside the closed set are rejected at the
// store boundary instead of leaking free text into the domain.
func ParseSentiment(raw string) (Sentiment, error) {
	switch s := Sentiment(raw); s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return s, nil
	default:
		return "", fmt.Errorf("unknown sentiment label %q", raw)
	}
}

// Entry is one journal record. ID and CreatedAt are assigned by the document
// store on creation and never change afterwards. Sentiment is always derived
// from Body at the time of the most recent write.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"entry"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentStore abstracts the external persistent collection of entries.
// Implementations live in internal/adapter (postgres, redis, memory).
//
// QueryEntries always returns the full collection ordered by CreatedAt
// descending; there is no filtering and no pagination. UpdateEntry never
// touches CreatedAt. Implementations report unknown ids as ErrEntryNotFound
// and transport failures as ErrStoreUnavailable.
type DocumentStore interface {
	AppendEntry(ctx context.Context, title, body string, sentiment Sentiment) (Entry, error)
	QueryEntries(ctx context.Context) ([]Entry, error)
	UpdateEntry(ctx context.Context, id, title, body string, sentiment Sentiment) (Entry, error)
}
