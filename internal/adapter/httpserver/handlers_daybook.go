package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/dreamjournal/internal/domain"
	apperrors "github.com/pscheid92/dreamjournal/internal/platform/errors"
)

const daybookDateLayout = "2006-01-02"

type daybookRequest struct {
	Body string `json:"entry"`
}

func (s *Server) handleSaveDaybookPage(c echo.Context) error {
	ctx := c.Request().Context()

	date, err := parseDaybookDate(c.Param("date"))
	if err != nil {
		return apperrors.ValidationError("date must be formatted as YYYY-MM-DD")
	}

	var req daybookRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if err := s.journal.SaveDaybookPage(ctx, date, req.Body); err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return apperrors.UnavailableError("journal is temporarily unavailable, please try again later", err)
		}
		return apperrors.InternalError("failed to save daybook page", err).WithField("date", date)
	}

	if err := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetDaybookPage(c echo.Context) error {
	ctx := c.Request().Context()

	date, err := parseDaybookDate(c.Param("date"))
	if err != nil {
		return apperrors.ValidationError("date must be formatted as YYYY-MM-DD")
	}

	page, err := s.journal.GetDaybookPage(ctx, date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPageNotFound):
			return apperrors.NotFoundError("no daybook page for this date")
		case errors.Is(err, domain.ErrStoreUnavailable):
			return apperrors.UnavailableError("journal is temporarily unavailable, please try again later", err)
		default:
			return apperrors.InternalError("failed to load daybook page", err).WithField("date", date)
		}
	}

	if err := c.JSON(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func parseDaybookDate(raw string) (string, error) {
	parsed, err := time.Parse(daybookDateLayout, raw)
	if err != nil {
		return "", err
	}
	return parsed.Format(daybookDateLayout), nil
}
