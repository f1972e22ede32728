// Package memory provides an in-memory document store backend. It is the
// default in development mode and the backend handler tests run against.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/dreamjournal/internal/domain"
)

type entryRecord struct {
	entry domain.Entry
	seq   int
}

// Store keeps entries and daybook pages in process memory. Ids come from
// google/uuid and timestamps from the injected clock, matching the
// store-assigned semantics of the persistent backends.
type Store struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	entries map[string]*entryRecord
	pages   map[string]string
	seq     int
}

func NewStore(clock clockwork.Clock) *Store {
	return &Store{
		clock:   clock,
		entries: make(map[string]*entryRecord),
		pages:   make(map[string]string),
	}
}

func (s *Store) AppendEntry(_ context.Context, title, body string, sentiment domain.Sentiment) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	entry := domain.Entry{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Sentiment: sentiment,
		CreatedAt: s.clock.Now(),
	}
	s.entries[entry.ID] = &entryRecord{entry: entry, seq: s.seq}
	return entry, nil
}

// QueryEntries returns all entries ordered by CreatedAt descending.
// Entries sharing a timestamp (possible under a fake clock) tie-break on
// insertion order, newest first, to keep the ordering deterministic.
func (s *Store) QueryEntries(_ context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*entryRecord, 0, len(s.entries))
	for _, rec := range s.entries {
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.entry.CreatedAt.Equal(b.entry.CreatedAt) {
			return a.entry.CreatedAt.After(b.entry.CreatedAt)
		}
		return a.seq > b.seq
	})

	entries := make([]domain.Entry, len(records))
	for i, rec := range records {
		entries[i] = rec.entry
	}
	return entries, nil
}

func (s *Store) UpdateEntry(_ context.Context, id, title, body string, sentiment domain.Sentiment) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[id]
	if !ok {
		return domain.Entry{}, domain.ErrEntryNotFound
	}

	rec.entry.Title = title
	rec.entry.Body = body
	rec.entry.Sentiment = sentiment
	return rec.entry, nil
}

func (s *Store) PutPage(_ context.Context, date, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[date] = body
	return nil
}

func (s *Store) GetPage(_ context.Context, date string) (domain.DaybookPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.pages[date]
	if !ok {
		return domain.DaybookPage{}, domain.ErrPageNotFound
	}
	return domain.DaybookPage{Date: date, Body: body}, nil
}

var (
	_ domain.DocumentStore = (*Store)(nil)
	_ domain.DaybookStore  = (*Store)(nil)
)
