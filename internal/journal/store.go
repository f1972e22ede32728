package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/pscheid92/dreamjournal/internal/adapter/metrics"
	"github.com/pscheid92/dreamjournal/internal/domain"
)

// Classifier derives a sentiment label from body text.
type Classifier interface {
	Classify(text string) domain.Sentiment
}

// EntryStore is the single source of truth for the entry lifecycle. It
// guarantees that an entry's sentiment is always derived from its body at
// the time of the most recent write: every create and every update runs the
// classifier, even when only the title changed.
type EntryStore struct {
	docs       domain.DocumentStore
	classifier Classifier
}

func NewEntryStore(docs domain.DocumentStore, classifier Classifier) *EntryStore {
	return &EntryStore{docs: docs, classifier: classifier}
}

// Create validates title and body, classifies the body, and appends a new
// document. Validation happens before the store is touched, so a rejected
// create never produces a document. ID and CreatedAt come back from the
// document store.
func (s *EntryStore) Create(ctx context.Context, title, body string) (domain.Entry, error) {
	title, body, err := validateInput(title, body)
	if err != nil {
		return domain.Entry{}, err
	}

	label := s.classifier.Classify(body)
	entry, err := s.docs.AppendEntry(ctx, title, body, label)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("append entry: %w", err)
	}

	metrics.EntriesCreatedTotal.WithLabelValues(string(label)).Inc()
	return entry, nil
}

// List returns the full entry collection ordered by CreatedAt descending.
// When the document store is unreachable it degrades gracefully: the caller
// receives an empty (non-nil) slice together with the error, so a rendering
// layer can show "no entries" instead of crashing.
func (s *EntryStore) List(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.docs.QueryEntries(ctx)
	if err != nil {
		return []domain.Entry{}, fmt.Errorf("query entries: %w", err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}

// Update validates title and body, recomputes the sentiment from the body
// unconditionally, and rewrites title, body, and sentiment of the document.
// CreatedAt is never touched, so the entry keeps its ordering position.
// Concurrent updates to the same id are last-write-wins at the store layer.
func (s *EntryStore) Update(ctx context.Context, id, title, body string) (domain.Entry, error) {
	title, body, err := validateInput(title, body)
	if err != nil {
		return domain.Entry{}, err
	}

	label := s.classifier.Classify(body)
	entry, err := s.docs.UpdateEntry(ctx, id, title, body, label)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("update entry %s: %w", id, err)
	}

	metrics.EntryUpdatesTotal.WithLabelValues(string(label)).Inc()
	return entry, nil
}

func validateInput(title, body string) (string, string, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return "", "", domain.ErrEmptyTitleOrBody
	}
	return title, body, nil
}
