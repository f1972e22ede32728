package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/dreamjournal/internal/adapter/metrics"
	"github.com/pscheid92/dreamjournal/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const (
	entryKeyPrefix = "journal:entry:"
	entryIndexKey  = "journal:entries:by_created"

	fieldTitle     = "title"
	fieldBody      = "entry"
	fieldSentiment = "sentiment"
	fieldCreatedAt = "created_at_ms"
)

// EntryStore implements domain.DocumentStore on Redis. Each entry is a hash
// under journal:entry:<id>; a sorted set scored by creation time in unix
// milliseconds provides the newest-first ordering. Ids come from google/uuid
// and timestamps from the injected clock, since Redis assigns neither.
type EntryStore struct {
	client *goredis.Client
	clock  clockwork.Clock
}

func NewEntryStore(client *goredis.Client, clock clockwork.Clock) *EntryStore {
	return &EntryStore{client: client, clock: clock}
}

var _ domain.DocumentStore = (*EntryStore)(nil)

func entryKey(id string) string {
	return entryKeyPrefix + id
}

func (s *EntryStore) AppendEntry(ctx context.Context, title, body string, sentiment domain.Sentiment) (domain.Entry, error) {
	start := time.Now()

	entry := domain.Entry{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Sentiment: sentiment,
		CreatedAt: s.clock.Now(),
	}

	createdMs := entry.CreatedAt.UnixMilli()
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, entryKey(entry.ID),
			fieldTitle, entry.Title,
			fieldBody, entry.Body,
			fieldSentiment, string(entry.Sentiment),
			fieldCreatedAt, createdMs,
		)
		pipe.ZAdd(ctx, entryIndexKey, goredis.Z{Score: float64(createdMs), Member: entry.ID})
		return nil
	})

	metrics.ObserveDocstoreOp("append_entry", start, err)
	if err != nil {
		return domain.Entry{}, unavailable("failed to append entry", err)
	}
	return entry, nil
}

func (s *EntryStore) QueryEntries(ctx context.Context) ([]domain.Entry, error) {
	start := time.Now()

	ids, err := s.client.ZRevRange(ctx, entryIndexKey, 0, -1).Result()
	if err != nil {
		metrics.ObserveDocstoreOp("query_entries", start, err)
		return nil, unavailable("failed to read entry index", err)
	}

	entries := make([]domain.Entry, 0, len(ids))
	for _, id := range ids {
		fields, err := s.client.HGetAll(ctx, entryKey(id)).Result()
		if err != nil {
			metrics.ObserveDocstoreOp("query_entries", start, err)
			return nil, unavailable("failed to read entry document", err)
		}

		entry, err := entryFromFields(id, fields)
		if err != nil {
			metrics.ObserveDocstoreOp("query_entries", start, err)
			return nil, err
		}
		entries = append(entries, entry)
	}

	metrics.ObserveDocstoreOp("query_entries", start, nil)
	return entries, nil
}

func (s *EntryStore) UpdateEntry(ctx context.Context, id, title, body string, sentiment domain.Sentiment) (domain.Entry, error) {
	start := time.Now()

	exists, err := s.client.Exists(ctx, entryKey(id)).Result()
	if err != nil {
		metrics.ObserveDocstoreOp("update_entry", start, err)
		return domain.Entry{}, unavailable("failed to check entry existence", err)
	}
	if exists == 0 {
		metrics.ObserveDocstoreOp("update_entry", start, domain.ErrEntryNotFound)
		return domain.Entry{}, domain.ErrEntryNotFound
	}

	// created_at_ms is deliberately not rewritten
	if err := s.client.HSet(ctx, entryKey(id),
		fieldTitle, title,
		fieldBody, body,
		fieldSentiment, string(sentiment),
	).Err(); err != nil {
		metrics.ObserveDocstoreOp("update_entry", start, err)
		return domain.Entry{}, unavailable("failed to update entry", err)
	}

	fields, err := s.client.HGetAll(ctx, entryKey(id)).Result()
	if err != nil {
		metrics.ObserveDocstoreOp("update_entry", start, err)
		return domain.Entry{}, unavailable("failed to read back entry", err)
	}

	entry, err := entryFromFields(id, fields)
	metrics.ObserveDocstoreOp("update_entry", start, err)
	if err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

// entryFromFields rebuilds a typed entry from a raw hash, rejecting documents
// with missing or malformed required fields instead of trusting them.
func entryFromFields(id string, fields map[string]string) (domain.Entry, error) {
	title, hasTitle := fields[fieldTitle]
	body, hasBody := fields[fieldBody]
	rawLabel, hasLabel := fields[fieldSentiment]
	rawCreated, hasCreated := fields[fieldCreatedAt]
	if !hasTitle || !hasBody || !hasLabel || !hasCreated {
		return domain.Entry{}, fmt.Errorf("document %s: missing required fields", id)
	}

	sentiment, err := domain.ParseSentiment(rawLabel)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("document %s: %w", id, err)
	}

	createdMs, err := strconv.ParseInt(rawCreated, 10, 64)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("document %s: invalid created_at_ms: %w", id, err)
	}

	return domain.Entry{
		ID:        id,
		Title:     title,
		Body:      body,
		Sentiment: sentiment,
		CreatedAt: time.UnixMilli(createdMs),
	}, nil
}

func unavailable(msg string, err error) error {
	if errors.Is(err, goredis.Nil) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrStoreUnavailable, err)
}
