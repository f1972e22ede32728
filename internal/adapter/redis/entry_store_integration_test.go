package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/dreamjournal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEntryStore(t *testing.T) (*EntryStore, *clockwork.FakeClock) {
	t.Helper()
	client := setupTestClient(t)
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 5, 12, 0, 0, 0, time.UTC))
	return NewEntryStore(client, clock), clock
}

func TestEntryStore_AppendAndQuery(t *testing.T) {
	store, clock := setupTestEntryStore(t)
	ctx := context.Background()

	first, err := store.AppendEntry(ctx, "First", "body one", domain.SentimentPositive)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	second, err := store.AppendEntry(ctx, "Second", "body two", domain.SentimentNegative)
	require.NoError(t, err)

	entries, err := store.QueryEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
	assert.Equal(t, "First", entries[1].Title)
	assert.Equal(t, "body one", entries[1].Body)
	assert.Equal(t, domain.SentimentPositive, entries[1].Sentiment)
	assert.True(t, entries[1].CreatedAt.Equal(first.CreatedAt))
}

func TestEntryStore_QueryEmpty(t *testing.T) {
	store, _ := setupTestEntryStore(t)

	entries, err := store.QueryEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryStore_Update(t *testing.T) {
	store, clock := setupTestEntryStore(t)
	ctx := context.Background()

	created, err := store.AppendEntry(ctx, "Flying dream", "it was amazing", domain.SentimentPositive)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	updated, err := store.UpdateEntry(ctx, created.ID, "Flying dream", "I was trapped and scared", domain.SentimentNegative)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, domain.SentimentNegative, updated.Sentiment)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "created_at must never change")

	// Ordering position unchanged after update
	entries, err := store.QueryEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "I was trapped and scared", entries[0].Body)
}

func TestEntryStore_UpdateNotFound(t *testing.T) {
	store, _ := setupTestEntryStore(t)

	_, err := store.UpdateEntry(context.Background(), uuid.NewString(), "title", "body", domain.SentimentNeutral)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestDaybookStore_PutAndGet(t *testing.T) {
	client := setupTestClient(t)
	store := NewDaybookStore(client)
	ctx := context.Background()

	require.NoError(t, store.PutPage(ctx, "2026-08-30", "first version"))
	require.NoError(t, store.PutPage(ctx, "2026-08-30", "second version"))

	page, err := store.GetPage(ctx, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "second version", page.Body)

	_, err = store.GetPage(ctx, "1999-01-01")
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
}
