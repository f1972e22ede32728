package journal

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/dreamjournal/internal/adapter/memory"
	"github.com/pscheid92/dreamjournal/internal/domain"
	"github.com/pscheid92/dreamjournal/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 5, 9, 0, 0, 0, time.UTC))
	store := memory.NewStore(clock)
	entries := NewEntryStore(store, sentiment.NewClassifier())
	return NewService(entries, store), clock
}

func TestService_CreateAndEditEntry(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateEntry(ctx, "Flying dream", "I was flying over mountains, it was amazing")
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentPositive, created.Sentiment)

	updated, err := service.UpdateEntry(ctx, created.ID, "Flying dream", "I was trapped and scared")
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentNegative, updated.Sentiment)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "edits must not move the entry in time")
}

func TestService_ListNewestFirst(t *testing.T) {
	service, clock := newTestService(t)
	ctx := context.Background()

	first, err := service.CreateEntry(ctx, "Monday", "nothing to report")
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	second, err := service.CreateEntry(ctx, "Tuesday", "still nothing")
	require.NoError(t, err)

	entries, err := service.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestService_MonthlyView(t *testing.T) {
	service, clock := newTestService(t)
	ctx := context.Background()

	// Day 5: an early positive entry, then a later negative one.
	_, err := service.CreateEntry(ctx, "Morning", "what a wonderful dream")
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	_, err = service.CreateEntry(ctx, "Afternoon", "a horrible nightmare")
	require.NoError(t, err)

	clock.Advance(3 * 24 * time.Hour) // day 8
	_, err = service.CreateEntry(ctx, "Later", "it was amazing")
	require.NoError(t, err)

	days, err := service.MonthlyView(ctx, 31)
	require.NoError(t, err)
	require.Len(t, days, 31)

	// The fold visits newest-first and overwrites, so the chronologically
	// earliest entry of day 5 ends up as its label.
	assert.Equal(t, domain.SentimentPositive, days[5])
	assert.Equal(t, domain.SentimentPositive, days[8])
	assert.Equal(t, domain.SentimentNeutral, days[1])
}

func TestService_MonthlyViewDegradesWhenStoreDown(t *testing.T) {
	docs := &mockDocumentStore{
		queryFn: func(context.Context) ([]domain.Entry, error) {
			return nil, domain.ErrStoreUnavailable
		},
	}
	entries := NewEntryStore(docs, &stubClassifier{})
	service := NewService(entries, nil)

	days, err := service.MonthlyView(context.Background(), 31)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	require.Len(t, days, 31, "the view must stay renderable while degraded")
	assert.Equal(t, domain.SentimentNeutral, days[15])
}

func TestService_SubmitDraft(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	sess := Session{Title: "Flying dream", Body: "it was amazing"}

	next, entry, err := service.SubmitDraft(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, Session{}, next, "draft is cleared after a successful submit")
	assert.Equal(t, domain.SentimentPositive, entry.Sentiment)
}

func TestService_SubmitDraftKeepsInputOnFailure(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	sess := Session{Title: "", Body: "some body"}

	next, _, err := service.SubmitDraft(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrEmptyTitleOrBody)
	assert.Equal(t, sess, next, "failed submit must not lose the user's draft")
}

func TestService_SaveEditFlow(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateEntry(ctx, "Flying dream", "it was amazing")
	require.NoError(t, err)

	sess := Session{}.StartEdit(created)
	assert.Equal(t, created.ID, sess.EditingID)
	assert.Equal(t, created.Title, sess.Title)

	sess.Body = "I was trapped and scared"
	next, updated, err := service.SaveEdit(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, Session{}, next)
	assert.Equal(t, domain.SentimentNegative, updated.Sentiment)
}

func TestService_SaveEditUnknownID(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	sess := Session{Title: "t", Body: "b", EditingID: "nope"}
	next, _, err := service.SaveEdit(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.Equal(t, sess, next)
}

func TestService_CancelEdit(t *testing.T) {
	sess := Session{Title: "t", Body: "b", EditingID: "1"}
	assert.Equal(t, Session{}, sess.CancelEdit())
}

func TestService_Daybook(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.SaveDaybookPage(ctx, "2026-08-05", "dreamt of the sea"))

	page, err := service.GetDaybookPage(ctx, "2026-08-05")
	require.NoError(t, err)
	assert.Equal(t, "dreamt of the sea", page.Body)

	// Blank pages are not persisted
	require.NoError(t, service.SaveDaybookPage(ctx, "2026-08-06", "   "))
	_, err = service.GetDaybookPage(ctx, "2026-08-06")
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
}
