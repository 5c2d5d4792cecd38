package models

import (
	"fmt"
	"sort"
	"time"
)

// Rider status values reported by the upstream API.
const (
	OnTimeStatus  = "OnTime"
	UnknownStatus = "Unknown"
)

// StopEvent is a single upcoming arrival/departure prediction at a stop.
// Events are derived per fetch and never persisted.
type StopEvent struct {
	Direction   Direction
	RouteName   string
	VehicleName string
	StopID      string
	StopName    string
	Expected    time.Time
	Scheduled   time.Time
	Status      string
	Minutes     int
}

// Delayed reports whether the upstream status indicates the shuttle is
// running behind schedule.
func (e StopEvent) Delayed() bool {
	return e.Status != "" && e.Status != OnTimeStatus && e.Status != UnknownStatus
}

// Clock formats the expected time for display in the given location.
func (e StopEvent) Clock(loc *time.Location) string {
	return e.Expected.In(loc).Format(ClockLayout)
}

// MinutesLabel formats the minutes-until-arrival for display, e.g. "3 min".
func (e StopEvent) MinutesLabel() string {
	return fmt.Sprintf("%d min", e.Minutes)
}

// MinutesUntil returns the whole minutes between now and t, clamped to
// non-negative so a shuttle due right now reads as 0 rather than -1.
func MinutesUntil(t, now time.Time) int {
	mins := int(t.Sub(now).Minutes())
	if mins < 0 {
		mins = 0
	}
	return mins
}

// SortEventsAscending orders events by expected time, earliest first.
func SortEventsAscending(events []StopEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Expected.Before(events[j].Expected)
	})
}
