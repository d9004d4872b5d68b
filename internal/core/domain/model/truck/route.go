package truck

import (
	"fleetsim/internal/pkg/errs"
)

// RouteStop is one customer visit in a truck's route: which location to
// serve and how many units the stop was planned for. The planned quantity
// drives loading; the actual unload at the stop is resolved against the
// customer's live demand when the truck gets there.
type RouteStop struct {
	LocationName string
	Quantity     int
}

// NewRouteStop creates a validated route stop.
// The location name must be non-empty and the planned quantity positive.
func NewRouteStop(locationName string, quantity int) (RouteStop, error) {
	if locationName == "" {
		return RouteStop{}, errs.NewValueIsRequiredError("location name")
	}
	if quantity <= 0 {
		return RouteStop{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	return RouteStop{LocationName: locationName, Quantity: quantity}, nil
}

// Validate checks the stop's fields. A zero-value RouteStop is invalid.
func (s RouteStop) Validate() error {
	if s.LocationName == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	if s.Quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", s.Quantity, 1, "unbounded")
	}
	return nil
}

// LogEntry is one entry in a truck's append-only event log: the truck's
// observable state after the tick's transition plus a human-readable
// comment describing what happened.
type LogEntry struct {
	Tick     int
	Status   Status
	Location string
	Cargo    int
	Comment  string
}
