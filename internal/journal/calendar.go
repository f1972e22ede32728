package journal

import "github.com/pscheid92/dreamjournal/internal/domain"

// AggregateCalendar folds an ordered entry collection into a day-of-month to
// sentiment mapping for calendar rendering. Every day 1..monthLength starts
// as Neutral; entries are then visited in the order given and each one
// overwrites its day's label unconditionally.
//
// The canonical input order is newest-first (EntryStore.List), so when several
// entries share a calendar day, the last one visited - the chronologically
// earliest of that day - determines the displayed label.
//
// The result is a pure value of entries and monthLength; nothing is cached
// between calls.
func AggregateCalendar(entries []domain.Entry, monthLength int) map[int]domain.Sentiment {
	days := make(map[int]domain.Sentiment, monthLength)
	for day := 1; day <= monthLength; day++ {
		days[day] = domain.SentimentNeutral
	}

	for _, entry := range entries {
		days[entry.CreatedAt.Day()] = entry.Sentiment
	}

	return days
}
