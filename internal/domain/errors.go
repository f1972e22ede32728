package domain

import "errors"

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrPageNotFound     = errors.New("daybook page not found")
	ErrEmptyTitleOrBody = errors.New("title and entry must not be empty")
	ErrStoreUnavailable = errors.New("document store unavailable")
)
