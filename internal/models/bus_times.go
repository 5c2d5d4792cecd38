package models

import "time"

// BusRow is one formatted upcoming bus in an API response.
type BusRow struct {
	Time    string `json:"time"`
	Minutes int    `json:"minutes"`
	Status  string `json:"status"`
}

// RouteTimes is the per-route payload of the bus-times endpoint.
type RouteTimes struct {
	StopName string   `json:"stop_name"`
	Buses    []BusRow `json:"buses"`
	Error    string   `json:"error,omitempty"`
	Action   string   `json:"action"`
}

// BusTimesResponse is the full bus-times endpoint payload. Routes that were
// not requested are omitted.
type BusTimesResponse struct {
	Outbound  *RouteTimes `json:"outbound,omitempty"`
	Inbound   *RouteTimes `json:"inbound,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewRouteTimes formats events into the API shape for one route. Buses is
// always a list, never null, so clients can iterate without checking.
func NewRouteTimes(route Route, events []StopEvent, loc *time.Location) RouteTimes {
	buses := make([]BusRow, 0, len(events))
	for _, e := range events {
		buses = append(buses, BusRow{
			Time:    e.Clock(loc),
			Minutes: e.Minutes,
			Status:  e.Status,
		})
	}

	return RouteTimes{
		StopName: route.DisplayName,
		Buses:    buses,
		Action:   route.Action(),
	}
}
