// Package queries contains read operations for retrieving simulation
// state. Implements the Query pattern for read operations in the CQRS
// architecture: queries return read models and never mutate the fleet.
// This is the only surface external collaborators (printers, visualizers)
// consume.
package queries

import (
	"errors"

	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

var ErrGetTruckLogQueryIsNotConstructed = errors.New(
	"GetTruckLogQuery must be created via NewGetTruckLogQuery constructor",
)

// GetTruckLogQuery retrieves the full event log of one truck, ordered by
// append time and never truncated for the life of the run.
//
// Example:
//
//	query, err := NewGetTruckLogQuery("TRK-001")
//	if err != nil {
//	    return err
//	}
//	entries, err := handler.Handle(ctx, query)
type GetTruckLogQuery struct {
	truckName string
	guard     guard.ConstructorGuard
}

// NewGetTruckLogQuery creates a query for the named truck's log.
// The truck name must be non-empty.
func NewGetTruckLogQuery(truckName string) (GetTruckLogQuery, error) {
	if truckName == "" {
		return GetTruckLogQuery{}, errs.NewValueIsRequiredError("truck name")
	}

	return GetTruckLogQuery{
		truckName: truckName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// TruckName returns the name of the truck whose log is requested.
func (q GetTruckLogQuery) TruckName() string {
	return q.truckName
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTruckLogQueryIsNotConstructed if validation fails.
func (q GetTruckLogQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckLogQueryIsNotConstructed)
}

// TruckLogEntryResponse is one truck log entry in the read model: the
// truck's observable state after a tick plus the comment describing what
// happened.
type TruckLogEntryResponse struct {
	Tick     int    `json:"tick"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Cargo    int    `json:"cargo"`
	Comment  string `json:"comment"`
}
