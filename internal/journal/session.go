package journal

import (
	"context"

	"github.com/pscheid92/dreamjournal/internal/domain"
)

// Session is the caller-owned draft state of a journal form: the title and
// body being typed, and the id of the entry being edited (empty while
// composing a new entry). It is an explicit value passed into operations
// instead of ambient mutable state; every operation returns the next session
// value alongside its result.
type Session struct {
	Title     string
	Body      string
	EditingID string
}

// StartEdit returns the session preloaded with an entry's current fields.
func (s Session) StartEdit(entry domain.Entry) Session {
	return Session{Title: entry.Title, Body: entry.Body, EditingID: entry.ID}
}

// CancelEdit discards the draft and leaves edit mode.
func (s Session) CancelEdit() Session {
	return Session{}
}

// SubmitDraft creates a new entry from the session's draft. The draft is
// cleared only on success; on any failure the session comes back unchanged
// so the user keeps their input.
func (s *Service) SubmitDraft(ctx context.Context, sess Session) (Session, domain.Entry, error) {
	entry, err := s.entries.Create(ctx, sess.Title, sess.Body)
	if err != nil {
		return sess, domain.Entry{}, err
	}
	return Session{}, entry, nil
}

// SaveEdit applies the session's draft to the entry being edited. On success
// the session leaves edit mode with a cleared draft; on failure it is
// returned unchanged.
func (s *Service) SaveEdit(ctx context.Context, sess Session) (Session, domain.Entry, error) {
	entry, err := s.entries.Update(ctx, sess.EditingID, sess.Title, sess.Body)
	if err != nil {
		return sess, domain.Entry{}, err
	}
	return Session{}, entry, nil
}
