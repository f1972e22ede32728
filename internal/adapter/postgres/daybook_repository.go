package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/dreamjournal/internal/adapter/metrics"
	"github.com/pscheid92/dreamjournal/internal/domain"
)

// DaybookRepository implements domain.DaybookStore on the journals table.
// Pages are upserted whole, keyed by calendar date.
type DaybookRepository struct {
	pool *pgxpool.Pool
}

func NewDaybookRepository(pool *pgxpool.Pool) *DaybookRepository {
	return &DaybookRepository{pool: pool}
}

var _ domain.DaybookStore = (*DaybookRepository)(nil)

func (r *DaybookRepository) PutPage(ctx context.Context, date, body string) error {
	start := time.Now()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO journals (date, entry) VALUES ($1, $2)
		 ON CONFLICT (date) DO UPDATE SET entry = excluded.entry, updated_at = now()`,
		date, body)

	metrics.ObserveDocstoreOp("put_page", start, err)
	if err != nil {
		return unavailable("failed to upsert daybook page", err)
	}
	return nil
}

func (r *DaybookRepository) GetPage(ctx context.Context, date string) (domain.DaybookPage, error) {
	start := time.Now()

	page := domain.DaybookPage{Date: date}
	err := r.pool.QueryRow(ctx,
		`SELECT entry FROM journals WHERE date = $1`, date).Scan(&page.Body)

	metrics.ObserveDocstoreOp("get_page", start, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DaybookPage{}, domain.ErrPageNotFound
	}
	if err != nil {
		return domain.DaybookPage{}, unavailable("failed to get daybook page", err)
	}
	return page, nil
}
