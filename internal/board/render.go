// Package board renders shuttle arrival predictions into the static status
// page and keeps the page up to date.
package board

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"time"

	"github.com/nickgulson11/nickPersonalSite/internal/models"
)

//go:embed route_region.tmpl
var templateFS embed.FS

var regionTemplate = template.Must(template.ParseFS(templateFS, "route_region.tmpl"))

// NoBusesHTML replaces a route region when no upcoming buses are known,
// whether the upstream fetch failed or simply returned no matches.
const NoBusesHTML = `<div class="error">No upcoming buses found</div>`

// Region names of the page placeholders.
const (
	outboundRegion  = "OUTBOUND_DATA"
	inboundRegion   = "INBOUND_DATA"
	timestampRegion = "TIMESTAMP"
)

type regionRow struct {
	Time    string
	Minutes string
	Status  string
}

type regionData struct {
	Header string
	Rows   []regionRow
}

// RenderRoute formats one route's events as the HTML fragment for its page
// region. An empty event list renders the fallback message.
func RenderRoute(route models.Route, events []models.StopEvent, loc *time.Location) (string, error) {
	if len(events) == 0 {
		return NoBusesHTML, nil
	}

	data := regionData{Header: models.EventsHeader(route, len(events))}
	for _, event := range events {
		data.Rows = append(data.Rows, regionRow{
			Time:    event.Clock(loc),
			Minutes: event.MinutesLabel(),
			Status:  event.Status,
		})
	}

	var buf bytes.Buffer
	if err := regionTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s region: %w", route.Direction.Name(), err)
	}
	return buf.String(), nil
}

// RenderPage substitutes both route fragments and the refresh timestamp into
// the page, leaving every placeholder marker in place so the next run can
// substitute again. Rendering the same inputs twice yields identical bytes.
func RenderPage(page, outboundHTML, inboundHTML string, now time.Time) (string, error) {
	updated, err := replaceRegion(page, outboundRegion, "\n"+outboundHTML+"\n")
	if err != nil {
		return "", err
	}

	updated, err = replaceRegion(updated, inboundRegion, "\n"+inboundHTML+"\n")
	if err != nil {
		return "", err
	}

	return replaceRegion(updated, timestampRegion, models.PageTimestamp(now))
}

// replaceRegion swaps the text between a pair of placeholder markers,
// keeping the markers themselves.
func replaceRegion(page, region, content string) (string, error) {
	start := fmt.Sprintf("<!-- %s_PLACEHOLDER -->", region)
	end := fmt.Sprintf("<!-- END_%s_PLACEHOLDER -->", region)

	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `.*?` + regexp.QuoteMeta(end))
	if !pattern.MatchString(page) {
		return "", fmt.Errorf("page is missing the %s placeholder region", region)
	}

	return pattern.ReplaceAllLiteralString(page, start+content+end), nil
}
