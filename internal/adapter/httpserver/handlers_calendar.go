package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// calendarMonthDays is the number of day slots the calendar renders.
// The grid is always 31 wide regardless of the current month's length.
const calendarMonthDays = 31

func (s *Server) handleCalendar(c echo.Context) error {
	ctx := c.Request().Context()

	days, err := s.journal.MonthlyView(ctx, calendarMonthDays)
	if err != nil {
		return mapEntryError(err, "failed to build calendar view")
	}

	response := map[string]any{"days": days}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
