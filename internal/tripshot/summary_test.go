package tripshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickgulson11/nickPersonalSite/internal/models"
)

func wardRoute(t *testing.T) models.Route {
	t.Helper()
	route, err := models.NewRoute(models.Outbound, "23174203-507c-48fe-811a-5d13fcf7be65", "Ward", "Ward")
	require.NoError(t, err)
	return route
}

func techRoute(t *testing.T) models.Route {
	t.Helper()
	route, err := models.NewRoute(models.Inbound, "EBEE9228-C993-4279-B7CE-8FCA0A46CA65", "Sheridan/Noyes (IB)", "Tech")
	require.NoError(t, err)
	return route
}

func stateOf(name string) map[string]json.RawMessage {
	return map[string]json.RawMessage{name: json.RawMessage(`{}`)}
}

// rideTo builds a minimal active ride with one Awaiting entry pointing at
// the named stop.
func rideTo(direction, stop string, expected time.Time) Ride {
	return Ride{
		State:       stateOf("Active"),
		RouteName:   "Intercampus Shuttle",
		VehicleName: "Bus 42",
		Direction:   direction,
		StopStatus: []StopStatus{
			{Awaiting: &Awaiting{
				StopID:              "stop-1",
				ViaIdx:              0,
				ExpectedArrivalTime: expected.Format(time.RFC3339),
				RiderStatus:         models.OnTimeStatus,
			}},
		},
		Vias: []Via{
			{ViaStop: &ViaStop{Stop: Stop{Name: stop}}},
		},
	}
}

func TestExtractEvents(t *testing.T) {
	route := wardRoute(t)
	now := time.Date(2025, 10, 6, 20, 0, 0, 0, time.UTC)

	t.Run("returns matching events sorted ascending", func(t *testing.T) {
		summary := &RouteSummary{Rides: []Ride{
			rideTo("Outbound", "Ward", now.Add(12*time.Minute)),
			rideTo("Outbound", "Ward", now.Add(3*time.Minute)),
		}}

		events := ExtractEvents(summary, route, now)

		require.Len(t, events, 2)
		assert.Equal(t, 3, events[0].Minutes)
		assert.Equal(t, 12, events[1].Minutes)
		assert.True(t, events[0].Expected.Before(events[1].Expected))
		assert.Equal(t, "Ward", events[0].StopName)
		assert.Equal(t, models.Outbound, events[0].Direction)
	})

	t.Run("includes accepted rides", func(t *testing.T) {
		ride := rideTo("Outbound", "Ward", now.Add(5*time.Minute))
		ride.State = stateOf("Accepted")

		events := ExtractEvents(&RouteSummary{Rides: []Ride{ride}}, route, now)
		assert.Len(t, events, 1)
	})

	t.Run("skips rides in other states", func(t *testing.T) {
		ride := rideTo("Outbound", "Ward", now.Add(5*time.Minute))
		ride.State = stateOf("Completed")

		events := ExtractEvents(&RouteSummary{Rides: []Ride{ride}}, route, now)
		assert.Empty(t, events)
	})

	t.Run("skips other directions", func(t *testing.T) {
		summary := &RouteSummary{Rides: []Ride{
			rideTo("Inbound", "Ward", now.Add(5*time.Minute)),
		}}

		events := ExtractEvents(summary, route, now)
		assert.Empty(t, events)
	})

	t.Run("skips other stops", func(t *testing.T) {
		summary := &RouteSummary{Rides: []Ride{
			rideTo("Outbound", "Foster", now.Add(5*time.Minute)),
		}}

		events := ExtractEvents(summary, route, now)
		assert.Empty(t, events)
	})

	t.Run("skips past events", func(t *testing.T) {
		summary := &RouteSummary{Rides: []Ride{
			rideTo("Outbound", "Ward", now.Add(-5*time.Minute)),
			rideTo("Outbound", "Ward", now),
		}}

		events := ExtractEvents(summary, route, now)
		assert.Empty(t, events)
	})

	t.Run("skips entries without a parseable arrival time", func(t *testing.T) {
		missing := rideTo("Outbound", "Ward", now.Add(5*time.Minute))
		missing.StopStatus[0].Awaiting.ExpectedArrivalTime = ""

		garbled := rideTo("Outbound", "Ward", now.Add(5*time.Minute))
		garbled.StopStatus[0].Awaiting.ExpectedArrivalTime = "tomorrow-ish"

		events := ExtractEvents(&RouteSummary{Rides: []Ride{missing, garbled}}, route, now)
		assert.Empty(t, events)
	})

	t.Run("skips stop entries that are not awaiting", func(t *testing.T) {
		ride := rideTo("Outbound", "Ward", now.Add(5*time.Minute))
		ride.StopStatus = append([]StopStatus{{Awaiting: nil}}, ride.StopStatus...)

		events := ExtractEvents(&RouteSummary{Rides: []Ride{ride}}, route, now)
		assert.Len(t, events, 1)
	})

	t.Run("out of range via index never matches", func(t *testing.T) {
		ride := rideTo("Outbound", "Ward", now.Add(5*time.Minute))
		ride.StopStatus[0].Awaiting.ViaIdx = 7

		events := ExtractEvents(&RouteSummary{Rides: []Ride{ride}}, route, now)
		assert.Empty(t, events)
	})

	t.Run("missing rider status defaults to Unknown", func(t *testing.T) {
		ride := rideTo("Outbound", "Ward", now.Add(5*time.Minute))
		ride.StopStatus[0].Awaiting.RiderStatus = ""

		events := ExtractEvents(&RouteSummary{Rides: []Ride{ride}}, route, now)
		require.Len(t, events, 1)
		assert.Equal(t, models.UnknownStatus, events[0].Status)
	})

	t.Run("keeps every match, truncation is the client's job", func(t *testing.T) {
		summary := &RouteSummary{Rides: []Ride{
			rideTo("Outbound", "Ward", now.Add(5*time.Minute)),
			rideTo("Outbound", "Ward", now.Add(15*time.Minute)),
			rideTo("Outbound", "Ward", now.Add(25*time.Minute)),
		}}

		events := ExtractEvents(summary, route, now)
		assert.Len(t, events, 3)
	})

	t.Run("nil summary yields no events", func(t *testing.T) {
		assert.Empty(t, ExtractEvents(nil, route, now))
	})

	t.Run("matches the inbound target stop by resolved name", func(t *testing.T) {
		summary := &RouteSummary{Rides: []Ride{
			rideTo("Inbound", "Sheridan/Noyes (IB)", now.Add(8*time.Minute)),
		}}

		events := ExtractEvents(summary, techRoute(t), now)
		require.Len(t, events, 1)
		assert.Equal(t, "Sheridan/Noyes (IB)", events[0].StopName)
		assert.Equal(t, 8, events[0].Minutes)
	})
}

func TestStopNames(t *testing.T) {
	now := time.Now()

	outbound := rideTo("Outbound", "Ward", now)
	outbound.Vias = []Via{
		{ViaStop: &ViaStop{Stop: Stop{Name: "Ward"}}},
		{ViaStop: &ViaStop{Stop: Stop{Name: "Foster"}}},
		{ViaStop: nil},
	}

	duplicate := rideTo("Outbound", "Ward", now)
	duplicate.Vias = []Via{
		{ViaStop: &ViaStop{Stop: Stop{Name: "Ward"}}},
		{ViaStop: &ViaStop{Stop: Stop{Name: "Arch"}}},
	}

	inbound := rideTo("Inbound", "Sheridan/Noyes (IB)", now)

	summary := &RouteSummary{Rides: []Ride{outbound, duplicate, inbound}}

	names := StopNames(summary, models.Outbound)
	assert.Equal(t, []string{"Arch", "Foster", "Ward"}, names)

	assert.Empty(t, StopNames(nil, models.Outbound))
}

func TestDecodeRouteSummary(t *testing.T) {
	payload := `{
		"rides": [
			{
				"state": {"Active": {"startedAt": "2025-10-06T19:40:00Z"}},
				"routeName": "Intercampus Shuttle",
				"vehicleName": "Bus 42",
				"direction": "Outbound",
				"stopStatus": [
					{"Departed": {"stopId": "s-0"}},
					{"Awaiting": {
						"stopId": "s-1",
						"viaIdx": 1,
						"expectedArrivalTime": "2025-10-06T20:03:00Z",
						"scheduledDepartureTime": "2025-10-06T20:01:00Z",
						"riderStatus": "OnTime"
					}}
				],
				"vias": [
					{"ViaStop": {"stop": {"name": "Tech"}}},
					{"ViaStop": {"stop": {"name": "Ward"}}}
				]
			}
		]
	}`

	var summary RouteSummary
	require.NoError(t, json.Unmarshal([]byte(payload), &summary))
	require.Len(t, summary.Rides, 1)

	ride := summary.Rides[0]
	assert.Contains(t, ride.State, "Active")
	assert.Equal(t, "Outbound", ride.Direction)

	// The Departed entry decodes with a nil Awaiting and is ignored.
	require.Len(t, ride.StopStatus, 2)
	assert.Nil(t, ride.StopStatus[0].Awaiting)
	require.NotNil(t, ride.StopStatus[1].Awaiting)
	assert.Equal(t, 1, ride.StopStatus[1].Awaiting.ViaIdx)
	assert.Equal(t, "Ward", ride.stopName(1))

	now := time.Date(2025, 10, 6, 20, 0, 0, 0, time.UTC)
	events := ExtractEvents(&summary, wardRoute(t), now)
	require.Len(t, events, 1)
	assert.Equal(t, 3, events[0].Minutes)
	assert.Equal(t, "s-1", events[0].StopID)
	assert.False(t, events[0].Scheduled.IsZero())
}
