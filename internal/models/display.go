package models

import "fmt"

// EventsHeader returns the heading line shown above a route's rows, e.g.
// "Next 2 buses arriving at Ward:".
func EventsHeader(route Route, count int) string {
	noun := "bus"
	if count > 1 {
		noun = "buses"
	}
	return fmt.Sprintf("Next %d %s %s %s:", count, noun, route.Action(), route.DisplayName)
}

// NoBusesMessage returns the line shown when a route has no upcoming events.
func NoBusesMessage(route Route) string {
	return fmt.Sprintf("No upcoming buses found for %s stop on %s route.", route.DisplayName, route.Direction)
}
