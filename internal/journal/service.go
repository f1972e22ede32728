package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/pscheid92/dreamjournal/internal/domain"
)

// Service is the orchestration surface the presentation layer calls. It
// composes the entry store, the calendar aggregation, and the daybook into
// the operations behind the HTTP handlers.
type Service struct {
	entries *EntryStore
	daybook domain.DaybookStore
}

// NewService creates the application service. daybook may be nil when the
// selected backend does not provide one.
func NewService(entries *EntryStore, daybook domain.DaybookStore) *Service {
	return &Service{entries: entries, daybook: daybook}
}

// CreateEntry records a new journal entry with a derived sentiment label.
func (s *Service) CreateEntry(ctx context.Context, title, body string) (domain.Entry, error) {
	return s.entries.Create(ctx, title, body)
}

// ListEntries returns the full snapshot, newest first.
func (s *Service) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	return s.entries.List(ctx)
}

// UpdateEntry edits an existing entry; the sentiment is re-derived from body.
func (s *Service) UpdateEntry(ctx context.Context, id, title, body string) (domain.Entry, error) {
	return s.entries.Update(ctx, id, title, body)
}

// MonthlyView lists all entries and folds them into a day-of-month sentiment
// map. When the store is unreachable the map still covers every day (all
// Neutral, folded from the degraded empty list) and the error is passed
// along so the caller can surface it.
func (s *Service) MonthlyView(ctx context.Context, monthLength int) (map[int]domain.Sentiment, error) {
	entries, err := s.entries.List(ctx)
	return AggregateCalendar(entries, monthLength), err
}

// SaveDaybookPage upserts the free-text page for a calendar date.
// Whitespace-only bodies are ignored, mirroring the editor behaviour of not
// persisting an untouched page.
func (s *Service) SaveDaybookPage(ctx context.Context, date, body string) error {
	if s.daybook == nil {
		return fmt.Errorf("daybook: %w", domain.ErrStoreUnavailable)
	}
	if strings.TrimSpace(body) == "" {
		return nil
	}
	if err := s.daybook.PutPage(ctx, date, body); err != nil {
		return fmt.Errorf("put daybook page %s: %w", date, err)
	}
	return nil
}

// GetDaybookPage fetches the page for a calendar date.
func (s *Service) GetDaybookPage(ctx context.Context, date string) (domain.DaybookPage, error) {
	if s.daybook == nil {
		return domain.DaybookPage{}, fmt.Errorf("daybook: %w", domain.ErrStoreUnavailable)
	}
	page, err := s.daybook.GetPage(ctx, date)
	if err != nil {
		return domain.DaybookPage{}, fmt.Errorf("get daybook page %s: %w", date, err)
	}
	return page, nil
}
