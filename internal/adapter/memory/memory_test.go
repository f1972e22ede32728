package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/dreamjournal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 5, 9, 0, 0, 0, time.UTC))
	return NewStore(clock), clock
}

func TestAppendEntry_AssignsIDAndTimestamp(t *testing.T) {
	store, clock := newTestStore()

	entry, err := store.AppendEntry(context.Background(), "Flying dream", "it was amazing", domain.SentimentPositive)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Flying dream", entry.Title)
	assert.Equal(t, "it was amazing", entry.Body)
	assert.Equal(t, domain.SentimentPositive, entry.Sentiment)
	assert.True(t, entry.CreatedAt.Equal(clock.Now()))
}

func TestQueryEntries_NewestFirst(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()

	first, err := store.AppendEntry(ctx, "first", "b", domain.SentimentNeutral)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	second, err := store.AppendEntry(ctx, "second", "b", domain.SentimentNeutral)
	require.NoError(t, err)

	entries, err := store.QueryEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestQueryEntries_TieBreaksOnInsertionOrder(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	// Same fake-clock instant for all three appends
	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		entry, err := store.AppendEntry(ctx, title, "body", domain.SentimentNeutral)
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}

	entries, err := store.QueryEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, ids[2], entries[0].ID)
	assert.Equal(t, ids[1], entries[1].ID)
	assert.Equal(t, ids[0], entries[2].ID)
}

func TestUpdateEntry_PreservesCreatedAt(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()

	created, err := store.AppendEntry(ctx, "old", "old body", domain.SentimentNeutral)
	require.NoError(t, err)

	clock.Advance(48 * time.Hour)
	updated, err := store.UpdateEntry(ctx, created.ID, "new", "new body", domain.SentimentNegative)
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "new body", updated.Body)
	assert.Equal(t, domain.SentimentNegative, updated.Sentiment)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateEntry_NotFound(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.UpdateEntry(context.Background(), "missing", "t", "b", domain.SentimentNeutral)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestDaybook_Upsert(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	_, err := store.GetPage(ctx, "2026-08-05")
	assert.ErrorIs(t, err, domain.ErrPageNotFound)

	require.NoError(t, store.PutPage(ctx, "2026-08-05", "first draft"))
	require.NoError(t, store.PutPage(ctx, "2026-08-05", "second draft"))

	page, err := store.GetPage(ctx, "2026-08-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-05", page.Date)
	assert.Equal(t, "second draft", page.Body)
}
