package restapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/nickgulson11/nickPersonalSite/internal/models"
)

// busTimesHandler serves GET /api/bus-times?route=outbound|inbound|both.
// A missing route parameter means both.
func (api *RestAPI) busTimesHandler(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Query().Get("route")
	if route == "" {
		route = "both"
	}
	api.serveBusTimes(w, r, route)
}

// busTimesRouteHandler serves the path form, GET /api/bus-times/outbound.
func (api *RestAPI) busTimesRouteHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	api.serveBusTimes(w, r, params.ByName("route"))
}

func (api *RestAPI) serveBusTimes(w http.ResponseWriter, r *http.Request, routeParam string) {
	now := time.Now()
	response := models.BusTimesResponse{Timestamp: models.PageTimestamp(now)}

	if strings.EqualFold(routeParam, "both") {
		response.Outbound = api.routeTimes(r.Context(), api.Routes.Outbound, now)
		response.Inbound = api.routeTimes(r.Context(), api.Routes.Inbound, now)
		api.sendResponse(w, r, response)
		return
	}

	direction, err := models.ParseDirection(routeParam)
	if err != nil {
		api.invalidRouteResponse(w, r, routeParam)
		return
	}

	times := api.routeTimes(r.Context(), api.Routes.ByDirection(direction), now)
	switch direction {
	case models.Outbound:
		response.Outbound = times
	case models.Inbound:
		response.Inbound = times
	}

	api.sendResponse(w, r, response)
}

// routeTimes fetches one route's upcoming buses. A fetch failure is reported
// inside the payload rather than failing the whole request.
func (api *RestAPI) routeTimes(ctx context.Context, route models.Route, now time.Time) *models.RouteTimes {
	events, err := api.Shuttles.UpcomingEvents(ctx, route, now)
	times := models.NewRouteTimes(route, events, api.Location)
	if err != nil {
		times.Error = "Failed to fetch data"
	}
	return &times
}
