package board

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/nickgulson11/nickPersonalSite/internal/app"
	"github.com/nickgulson11/nickPersonalSite/internal/logging"
	"github.com/nickgulson11/nickPersonalSite/internal/models"
)

// Board refreshes the static shuttle times page from the TripShot API.
type Board struct {
	*app.Application
}

func New(application *app.Application) *Board {
	return &Board{Application: application}
}

// Refresh fetches both routes, renders their regions, and rewrites the page
// file in place. A failed or empty fetch renders the fallback message for
// that route; only page template problems are fatal.
func (b *Board) Refresh(ctx context.Context) error {
	now := time.Now()

	// Fetch both routes in parallel
	var wg sync.WaitGroup
	var outboundEvents, inboundEvents []models.StopEvent

	wg.Add(1)
	go func() {
		defer wg.Done()
		outboundEvents = b.routeEvents(ctx, b.Routes.Outbound, now)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		inboundEvents = b.routeEvents(ctx, b.Routes.Inbound, now)
	}()

	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outboundHTML, err := RenderRoute(b.Routes.Outbound, outboundEvents, b.Location)
	if err != nil {
		return err
	}

	inboundHTML, err := RenderRoute(b.Routes.Inbound, inboundEvents, b.Location)
	if err != nil {
		return err
	}

	pagePath := b.Config.Page.Path
	raw, err := os.ReadFile(pagePath)
	if err != nil {
		return fmt.Errorf("reading page: %w", err)
	}

	updated, err := RenderPage(string(raw), outboundHTML, inboundHTML, now)
	if err != nil {
		return err
	}

	if err := os.WriteFile(pagePath, []byte(updated), 0644); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	logging.LogOperation(b.Logger, "page_updated",
		slog.String("page", pagePath),
		slog.Int("outbound_events", len(outboundEvents)),
		slog.Int("inbound_events", len(inboundEvents)))

	return nil
}

func (b *Board) routeEvents(ctx context.Context, route models.Route, now time.Time) []models.StopEvent {
	events, err := b.Shuttles.UpcomingEvents(ctx, route, now)
	if err != nil {
		// Already logged by the client; the page shows the fallback.
		return nil
	}
	return events
}

// RunEvery refreshes the page immediately and then on every tick until the
// context is canceled. Refresh failures are logged and the loop keeps going.
func (b *Board) RunEvery(ctx context.Context, interval time.Duration) {
	if err := b.Refresh(ctx); err != nil {
		logging.LogError(b.Logger, "page refresh failed", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := b.Refresh(ctx); err != nil {
				logging.LogError(b.Logger, "page refresh failed", err)
			}
		case <-ctx.Done():
			logging.LogOperation(b.Logger, "page_updater_stopped")
			return
		}
	}
}
