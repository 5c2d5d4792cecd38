package models

import "time"

// Fixed display layouts. The page and API have served these exact formats
// since the first version, so they are not configurable.
const (
	// ClockLayout renders a stop event time, e.g. "08:15 PM".
	ClockLayout = "03:04 PM"

	// PageTimestampLayout renders the page's last-updated line.
	PageTimestampLayout = "03:04:05 PM UTC on January 02, 2006"

	// ErrorTimestampLayout renders the timestamp attached to API error
	// responses.
	ErrorTimestampLayout = "03:04:05 PM UTC"

	// DayLayout renders the service day sent to the upstream API.
	DayLayout = "2006-01-02"
)

// PageTimestamp formats t for the page's last-updated region, always in UTC.
func PageTimestamp(t time.Time) string {
	return t.UTC().Format(PageTimestampLayout)
}
