package redis

import (
	"context"
	"errors"
	"time"

	"github.com/pscheid92/dreamjournal/internal/adapter/metrics"
	"github.com/pscheid92/dreamjournal/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const daybookKeyPrefix = "journal:daybook:"

// DaybookStore implements domain.DaybookStore as one string key per date.
type DaybookStore struct {
	client *goredis.Client
}

func NewDaybookStore(client *goredis.Client) *DaybookStore {
	return &DaybookStore{client: client}
}

var _ domain.DaybookStore = (*DaybookStore)(nil)

func (s *DaybookStore) PutPage(ctx context.Context, date, body string) error {
	start := time.Now()

	err := s.client.Set(ctx, daybookKeyPrefix+date, body, 0).Err()
	metrics.ObserveDocstoreOp("put_page", start, err)
	if err != nil {
		return unavailable("failed to put daybook page", err)
	}
	return nil
}

func (s *DaybookStore) GetPage(ctx context.Context, date string) (domain.DaybookPage, error) {
	start := time.Now()

	body, err := s.client.Get(ctx, daybookKeyPrefix+date).Result()
	if errors.Is(err, goredis.Nil) {
		metrics.ObserveDocstoreOp("get_page", start, nil)
		return domain.DaybookPage{}, domain.ErrPageNotFound
	}
	metrics.ObserveDocstoreOp("get_page", start, err)
	if err != nil {
		return domain.DaybookPage{}, unavailable("failed to get daybook page", err)
	}
	return domain.DaybookPage{Date: date, Body: body}, nil
}
