package truck

import (
	"fmt"

	"fleetsim/internal/pkg/errs"
)

// Status represents the state of a truck in its delivery cycle.
// It implements a state machine with defined transitions; trucks cycle
// indefinitely and there is no terminal state.
//
// State transitions:
//
//	IdleAtDepot ──> PendingRoute ──> LoadingAtDepot ──> PendingDeparture
//	     ^  │                                                  │
//	     │  └──(no route: waits in place)                      v
//	     └───────────── EnRoute <── FinishedUnloading <── IdleAtCustomer
//	                       │                ^                  ^
//	                       └────────────────┼──────────────────┘
//	                          (next stop or return leg)
//
// Status is a value object that validates state transitions and provides
// string representations for logs and snapshots.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// IdleAtDepot is the initial status: parked at a depot, waiting for a
	// route assignment (or, with a fresh assignment, for the load tick).
	IdleAtDepot

	// PendingRoute means a route was received and the truck is waiting for
	// its loading tick.
	PendingRoute

	// LoadingAtDepot means the truck spent this tick taking cargo aboard.
	LoadingAtDepot

	// PendingDeparture means the truck is loaded and spends one tick
	// preparing before it departs for the first stop.
	PendingDeparture

	// EnRoute means the truck departed this tick; its location already
	// reflects the destination, and arrival resolves next tick.
	EnRoute

	// IdleAtCustomer means the truck arrived at a customer stop and will
	// unload on its next tick.
	IdleAtCustomer

	// FinishedUnloading means the truck completed unloading at the current
	// customer and will depart for the next stop (or home) next tick.
	FinishedUnloading
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		IdleAtDepot:       "IdleAtDepot",
		PendingRoute:      "PendingRoute",
		LoadingAtDepot:    "LoadingAtDepot",
		PendingDeparture:  "PendingDeparture",
		EnRoute:           "EnRoute",
		IdleAtCustomer:    "IdleAtCustomer",
		FinishedUnloading: "FinishedUnloading",
	}
}

// getAllowedTransitions returns, per status, the set of statuses a truck
// may legally move to on its next tick. This table is the contract the
// orchestration logic in Step is held to; tests walk observed status
// sequences against it.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		IdleAtDepot:       {IdleAtDepot, PendingRoute},
		PendingRoute:      {LoadingAtDepot},
		LoadingAtDepot:    {PendingDeparture},
		PendingDeparture:  {EnRoute},
		EnRoute:           {IdleAtCustomer, IdleAtDepot},
		IdleAtCustomer:    {FinishedUnloading},
		FinishedUnloading: {EnRoute},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any undefined values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateTransition checks whether moving from the current status to next
// is a legal walk of the state machine.
//
// Returns:
//   - nil if the transition is allowed
//   - error with both statuses if it is not
func (s Status) ValidateTransition(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if next == allowed {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
		fmt.Errorf("cannot transition from %s to %s", s, next))
}
