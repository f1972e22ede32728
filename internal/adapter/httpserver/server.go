// Package httpserver is the presentation adapter: a REST surface over the
// journal service, plus health probes and prometheus metrics.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/dreamjournal/internal/domain"
	"github.com/pscheid92/dreamjournal/internal/platform/config"
)

// journalService is the application surface the handlers call.
type journalService interface {
	CreateEntry(ctx context.Context, title, body string) (domain.Entry, error)
	ListEntries(ctx context.Context) ([]domain.Entry, error)
	UpdateEntry(ctx context.Context, id, title, body string) (domain.Entry, error)
	MonthlyView(ctx context.Context, monthLength int) (map[int]domain.Sentiment, error)
	SaveDaybookPage(ctx context.Context, date, body string) error
	GetDaybookPage(ctx context.Context, date string) (domain.DaybookPage, error)
}

// HealthCheck is a named health check function.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Server struct {
	echo    *echo.Echo
	config  *config.Config
	journal journalService

	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, journal journalService, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		journal:      journal,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
