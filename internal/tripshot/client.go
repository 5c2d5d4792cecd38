package tripshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nickgulson11/nickPersonalSite/internal/logging"
	"github.com/nickgulson11/nickPersonalSite/internal/models"
)

// MaxUpcoming is how many stop events the pipeline keeps per route.
const MaxUpcoming = 2

// userAgent matches the browser string the upstream has served without
// complaint since this client was first written.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Client fetches route summaries from a TripShot deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the deployment at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SummaryURL builds the routeSummary request URL for one route and service
// day.
func (c *Client) SummaryURL(routeID uuid.UUID, day string) string {
	return fmt.Sprintf("%s/v2/p/routeSummary/%s?day=%s&withNavigation=true&embedStops=true",
		c.baseURL, routeID, day)
}

// FetchSummary requests the route summary for the service day containing
// now.
func (c *Client) FetchSummary(ctx context.Context, route models.Route, now time.Time) (*RouteSummary, error) {
	url := c.SummaryURL(route.ID, now.Format(models.DayLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching route summary: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "route_summary_body")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("route summary request returned %s", resp.Status)
	}

	var summary RouteSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decoding route summary: %w", err)
	}

	return &summary, nil
}

// UpcomingEvents fetches and extracts the next stop events for a route,
// keeping at most MaxUpcoming. Fetch and decode failures are returned as
// errors so callers can distinguish "upstream down" from "no buses"; both
// degrade to an empty display.
func (c *Client) UpcomingEvents(ctx context.Context, route models.Route, now time.Time) ([]models.StopEvent, error) {
	summary, err := c.FetchSummary(ctx, route, now)
	if err != nil {
		logging.LogError(c.logger, "failed to fetch route summary", err,
			slog.String("route", route.Direction.Name()),
			slog.String("component", "tripshot_client"))
		return nil, err
	}

	events := ExtractEvents(summary, route, now)
	if len(events) > MaxUpcoming {
		events = events[:MaxUpcoming]
	}

	c.logger.Debug("route summary fetched",
		slog.String("route", route.Direction.Name()),
		slog.Int("rides", len(summary.Rides)),
		slog.Int("upcoming", len(events)))

	return events, nil
}
