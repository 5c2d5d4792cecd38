package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Route is one direction of shuttle service. Routes are immutable once built
// from configuration.
type Route struct {
	Direction   Direction
	ID          uuid.UUID
	TargetStop  string
	DisplayName string
}

// NewRoute builds a Route from its configured parts. The display name falls
// back to the target stop when not set.
func NewRoute(direction Direction, rawID, targetStop, displayName string) (Route, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Route{}, fmt.Errorf("%s route: invalid route id %q: %w", direction.Name(), rawID, err)
	}

	if displayName == "" {
		displayName = targetStop
	}

	return Route{
		Direction:   direction,
		ID:          id,
		TargetStop:  targetStop,
		DisplayName: displayName,
	}, nil
}

// Action returns the verb phrase for the route's stop events.
func (r Route) Action() string {
	return r.Direction.Action()
}

// RouteSet holds the two tracked routes.
type RouteSet struct {
	Outbound Route
	Inbound  Route
}

// ByDirection returns the route running the given direction.
func (rs RouteSet) ByDirection(d Direction) Route {
	if d == Inbound {
		return rs.Inbound
	}
	return rs.Outbound
}
