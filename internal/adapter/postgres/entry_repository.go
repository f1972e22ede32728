package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/dreamjournal/internal/adapter/metrics"
	"github.com/pscheid92/dreamjournal/internal/domain"
)

// EntryRepository implements domain.DocumentStore on a pgx pool. Ids and
// creation timestamps are assigned by the database; updates never touch
// created_at, and concurrent updates to one row are last-write-wins.
type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

var _ domain.DocumentStore = (*EntryRepository)(nil)

func (r *EntryRepository) AppendEntry(ctx context.Context, title, body string, sentiment domain.Sentiment) (domain.Entry, error) {
	start := time.Now()

	row := r.pool.QueryRow(ctx,
		`INSERT INTO entries (title, entry, sentiment) VALUES ($1, $2, $3)
		 RETURNING id, title, entry, sentiment, created_at`,
		title, body, string(sentiment))

	entry, err := scanEntry(row)
	metrics.ObserveDocstoreOp("append_entry", start, err)
	if err != nil {
		return domain.Entry{}, unavailable("failed to insert entry", err)
	}
	return entry, nil
}

func (r *EntryRepository) QueryEntries(ctx context.Context) ([]domain.Entry, error) {
	start := time.Now()

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, entry, sentiment, created_at FROM entries ORDER BY created_at DESC`)
	if err != nil {
		metrics.ObserveDocstoreOp("query_entries", start, err)
		return nil, unavailable("failed to query entries", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			metrics.ObserveDocstoreOp("query_entries", start, err)
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		metrics.ObserveDocstoreOp("query_entries", start, err)
		return nil, unavailable("failed to read entries", err)
	}

	metrics.ObserveDocstoreOp("query_entries", start, nil)
	return entries, nil
}

func (r *EntryRepository) UpdateEntry(ctx context.Context, id, title, body string, sentiment domain.Sentiment) (domain.Entry, error) {
	start := time.Now()

	row := r.pool.QueryRow(ctx,
		`UPDATE entries SET title = $2, entry = $3, sentiment = $4 WHERE id = $1
		 RETURNING id, title, entry, sentiment, created_at`,
		id, title, body, string(sentiment))

	entry, err := scanEntry(row)
	metrics.ObserveDocstoreOp("update_entry", start, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Entry{}, domain.ErrEntryNotFound
	}
	if err != nil {
		return domain.Entry{}, unavailable("failed to update entry", err)
	}
	return entry, nil
}

func scanEntry(row pgx.Row) (domain.Entry, error) {
	var (
		entry domain.Entry
		label string
	)
	if err := row.Scan(&entry.ID, &entry.Title, &entry.Body, &label, &entry.CreatedAt); err != nil {
		return domain.Entry{}, err
	}

	sentiment, err := domain.ParseSentiment(label)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("document %s: %w", entry.ID, err)
	}
	entry.Sentiment = sentiment
	return entry, nil
}

// unavailable tags a transport-level failure so callers can detect store
// unreachability with errors.Is.
func unavailable(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrStoreUnavailable, err)
}
