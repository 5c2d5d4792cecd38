// Package tripshot reads shuttle predictions from the TripShot routeSummary
// API. The wire format is owned by TripShot; only the fields the pipeline
// needs are declared, and unknown fields or states are ignored.
package tripshot

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/nickgulson11/nickPersonalSite/internal/models"
)

// RouteSummary is the top-level routeSummary payload.
type RouteSummary struct {
	Rides []Ride `json:"rides"`
}

// Ride is one vehicle trip over a route. State is an object keyed by the
// state name ("Active", "Accepted", "Completed", ...), so presence of a key
// is the signal, not its value.
type Ride struct {
	State       map[string]json.RawMessage `json:"state"`
	RouteName   string                     `json:"routeName"`
	VehicleName string                     `json:"vehicleName"`
	Direction   string                     `json:"direction"`
	StopStatus  []StopStatus               `json:"stopStatus"`
	Vias        []Via                      `json:"vias"`
}

// StopStatus wraps the per-stop state object. Only Awaiting entries carry
// upcoming predictions; entries in other states decode with a nil Awaiting.
type StopStatus struct {
	Awaiting *Awaiting `json:"Awaiting"`
}

// Awaiting describes a stop the vehicle has not reached yet. Timestamps stay
// as strings here because individual entries can be missing or malformed
// without invalidating the rest of the payload.
type Awaiting struct {
	StopID                 string `json:"stopId"`
	ViaIdx                 int    `json:"viaIdx"`
	ExpectedArrivalTime    string `json:"expectedArrivalTime"`
	ScheduledDepartureTime string `json:"scheduledDepartureTime"`
	RiderStatus            string `json:"riderStatus"`
}

// Via is one entry in a ride's ordered stop list.
type Via struct {
	ViaStop *ViaStop `json:"ViaStop"`
}

// ViaStop wraps the embedded stop record.
type ViaStop struct {
	Stop Stop `json:"stop"`
}

// Stop is the embedded stop record.
type Stop struct {
	Name string `json:"name"`
}

const unknownStop = "Unknown Stop"

// isUpcoming reports whether the ride is still producing stop events.
func (r Ride) isUpcoming() bool {
	if _, ok := r.State["Active"]; ok {
		return true
	}
	_, ok := r.State["Accepted"]
	return ok
}

// stopName resolves an Awaiting entry's via index to a stop name.
func (r Ride) stopName(viaIdx int) string {
	if viaIdx >= 0 && viaIdx < len(r.Vias) && r.Vias[viaIdx].ViaStop != nil {
		return r.Vias[viaIdx].ViaStop.Stop.Name
	}
	return unknownStop
}

// ExtractEvents filters a route summary down to future stop events at the
// route's target stop, sorted by expected arrival, earliest first. Rides in
// other states or directions, stops already visited, and entries whose
// expected arrival is missing, malformed, or in the past are all skipped.
func ExtractEvents(summary *RouteSummary, route models.Route, now time.Time) []models.StopEvent {
	if summary == nil {
		return nil
	}

	var events []models.StopEvent
	for _, ride := range summary.Rides {
		if !ride.isUpcoming() {
			continue
		}
		if ride.Direction != route.Direction.String() {
			continue
		}

		for _, status := range ride.StopStatus {
			if status.Awaiting == nil {
				continue
			}
			awaiting := status.Awaiting

			stopName := ride.stopName(awaiting.ViaIdx)
			if stopName != route.TargetStop {
				continue
			}

			expected, err := time.Parse(time.RFC3339, awaiting.ExpectedArrivalTime)
			if err != nil || !expected.After(now) {
				continue
			}

			// The scheduled departure is informational; a missing one
			// leaves the zero value.
			scheduled, _ := time.Parse(time.RFC3339, awaiting.ScheduledDepartureTime)

			riderStatus := awaiting.RiderStatus
			if riderStatus == "" {
				riderStatus = models.UnknownStatus
			}

			events = append(events, models.StopEvent{
				Direction:   route.Direction,
				RouteName:   ride.RouteName,
				VehicleName: ride.VehicleName,
				StopID:      awaiting.StopID,
				StopName:    stopName,
				Expected:    expected,
				Scheduled:   scheduled,
				Status:      riderStatus,
				Minutes:     models.MinutesUntil(expected, now),
			})
		}
	}

	models.SortEventsAscending(events)
	return events
}

// StopNames returns the sorted unique via stop names served in a direction.
// Used by the CLI to discover the exact spelling of a target stop.
func StopNames(summary *RouteSummary, direction models.Direction) []string {
	if summary == nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, ride := range summary.Rides {
		if ride.Direction != direction.String() {
			continue
		}
		for _, via := range ride.Vias {
			if via.ViaStop == nil {
				continue
			}
			name := via.ViaStop.Stop.Name
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
