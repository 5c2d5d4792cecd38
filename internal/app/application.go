package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nickgulson11/nickPersonalSite/internal/config"
	"github.com/nickgulson11/nickPersonalSite/internal/models"
	"github.com/nickgulson11/nickPersonalSite/internal/tripshot"
)

// Application holds the dependencies shared by the page updater, the CLI
// printer, and the HTTP handlers: the parsed configuration, a logger, the
// resolved shuttle routes, the TripShot client, and the display time zone.
type Application struct {
	Config   config.Config
	Logger   *slog.Logger
	Routes   models.RouteSet
	Shuttles *tripshot.Client
	Location *time.Location
}

// NewApplication resolves the configured routes and time zone and wires up
// the TripShot client. The configuration is expected to be validated already.
func NewApplication(cfg config.Config, logger *slog.Logger) (*Application, error) {
	outbound, err := models.NewRoute(models.Outbound,
		cfg.Routes.Outbound.RouteID, cfg.Routes.Outbound.TargetStop, cfg.Routes.Outbound.DisplayName)
	if err != nil {
		return nil, err
	}

	inbound, err := models.NewRoute(models.Inbound,
		cfg.Routes.Inbound.RouteID, cfg.Routes.Inbound.TargetStop, cfg.Routes.Inbound.DisplayName)
	if err != nil {
		return nil, err
	}

	location, err := cfg.Page.Location()
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", cfg.Page.TimeZone, err)
	}

	return &Application{
		Config:   cfg,
		Logger:   logger,
		Routes:   models.RouteSet{Outbound: outbound, Inbound: inbound},
		Shuttles: tripshot.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), logger),
		Location: location,
	}, nil
}
