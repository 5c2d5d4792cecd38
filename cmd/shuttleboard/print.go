package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nickgulson11/nickPersonalSite/internal/app"
	"github.com/nickgulson11/nickPersonalSite/internal/models"
	"github.com/nickgulson11/nickPersonalSite/internal/tripshot"
)

// printRouteTimes writes the next buses for one route to w, one numbered row
// per bus. A failed fetch prints the same message as an empty result.
func printRouteTimes(ctx context.Context, w io.Writer, application *app.Application, routeName string) error {
	direction, err := models.ParseDirection(routeName)
	if err != nil {
		return err
	}
	route := application.Routes.ByDirection(direction)

	events, err := application.Shuttles.UpcomingEvents(ctx, route, time.Now())
	if err != nil {
		events = nil
	}

	if len(events) == 0 {
		fmt.Fprintln(w, models.NoBusesMessage(route))
		return nil
	}

	fmt.Fprintln(w, models.EventsHeader(route, len(events)))
	for i, event := range events {
		fmt.Fprintf(w, "  %d. %s (%s) - %s\n",
			i+1, event.Clock(application.Location), event.MinutesLabel(), event.Status)
	}

	return nil
}

// printStops lists every stop name the route serves today.
func printStops(ctx context.Context, w io.Writer, application *app.Application, routeName string) error {
	direction, err := models.ParseDirection(routeName)
	if err != nil {
		return err
	}
	route := application.Routes.ByDirection(direction)

	summary, err := application.Shuttles.FetchSummary(ctx, route, time.Now())
	if err != nil {
		return err
	}

	stops := tripshot.StopNames(summary, direction)
	if len(stops) == 0 {
		fmt.Fprintf(w, "No stops found on the %s route.\n", direction.Name())
		return nil
	}

	fmt.Fprintf(w, "Stops on the %s route:\n", direction.Name())
	for _, stop := range stops {
		fmt.Fprintf(w, "  %s\n", stop)
	}

	return nil
}
