package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/dreamjournal/internal/domain"
	apperrors "github.com/pscheid92/dreamjournal/internal/platform/errors"
)

// validationMessage is the user-facing text for empty title/body submissions.
const validationMessage = "Both title and entry are required!"

type entryRequest struct {
	Title string `json:"title"`
	Body  string `json:"entry"`
}

func (s *Server) handleCreateEntry(c echo.Context) error {
	ctx := c.Request().Context()

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	entry, err := s.journal.CreateEntry(ctx, req.Title, req.Body)
	if err != nil {
		return mapEntryError(err, "failed to create entry")
	}

	if err := c.JSON(http.StatusCreated, entry); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleListEntries(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := s.journal.ListEntries(ctx)
	if err != nil {
		return mapEntryError(err, "failed to list entries")
	}

	if err := c.JSON(http.StatusOK, entries); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUpdateEntry(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	entry, err := s.journal.UpdateEntry(ctx, id, req.Title, req.Body)
	if err != nil {
		return mapEntryError(err, "failed to update entry").WithField("entry_id", id)
	}

	if err := c.JSON(http.StatusOK, entry); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func mapEntryError(err error, internalMessage string) *apperrors.Error {
	switch {
	case errors.Is(err, domain.ErrEmptyTitleOrBody):
		return apperrors.ValidationError(validationMessage)
	case errors.Is(err, domain.ErrEntryNotFound):
		return apperrors.NotFoundError("entry not found")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return apperrors.UnavailableError("journal is temporarily unavailable, please try again later", err)
	default:
		return apperrors.InternalError(internalMessage, err)
	}
}
