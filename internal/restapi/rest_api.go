// Package restapi serves the bus times JSON API.
package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/nickgulson11/nickPersonalSite/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		rateLimiter: NewRateLimitMiddleware(application.Config.Server.RateLimit, time.Second),
	}
}

// Handler returns the routed API wrapped in the middleware chain: request
// logging, CORS, compression, then rate limiting.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/api/bus-times", api.busTimesHandler)
	router.HandlerFunc(http.MethodGet, "/api/bus-times/:route", api.busTimesRouteHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	var handler http.Handler = router
	handler = api.rateLimiter.rateLimitHandler(handler)
	handler = CompressionMiddleware(handler)
	handler = corsHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)

	return handler
}

// Stop shuts down the rate limiter's background cleanup.
func (api *RestAPI) Stop() {
	api.rateLimiter.Stop()
}
