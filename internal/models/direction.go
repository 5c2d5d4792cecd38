package models

import (
	"fmt"
	"strings"
)

// Direction identifies which way a shuttle route runs.
type Direction int

const (
	Outbound Direction = iota
	Inbound
)

// String returns the upstream spelling of the direction.
func (d Direction) String() string {
	switch d {
	case Outbound:
		return "Outbound"
	case Inbound:
		return "Inbound"
	default:
		return "Unknown"
	}
}

// Name returns the lowercase route name used on the CLI and in API queries.
func (d Direction) Name() string {
	return strings.ToLower(d.String())
}

// Action returns the verb phrase used when describing the direction's stop
// events: outbound shuttles arrive at their stop, inbound shuttles depart
// from theirs.
func (d Direction) Action() string {
	if d == Outbound {
		return "arriving at"
	}
	return "departing from"
}

// ParseDirection converts a route name like "outbound" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "outbound":
		return Outbound, nil
	case "inbound":
		return Inbound, nil
	}
	return 0, fmt.Errorf("unknown route %q (expected outbound or inbound)", s)
}
