package queries

import (
	"errors"

	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

var ErrGetLocationLogQueryIsNotConstructed = errors.New(
	"GetLocationLogQuery must be created via NewGetLocationLogQuery constructor",
)

// GetLocationLogQuery retrieves the full event log of one location (depot
// or customer).
type GetLocationLogQuery struct {
	locationName string
	guard        guard.ConstructorGuard
}

// NewGetLocationLogQuery creates a query for the named location's log.
// The location name must be non-empty.
func NewGetLocationLogQuery(locationName string) (GetLocationLogQuery, error) {
	if locationName == "" {
		return GetLocationLogQuery{}, errs.NewValueIsRequiredError("location name")
	}

	return GetLocationLogQuery{
		locationName: locationName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// LocationName returns the name of the location whose log is requested.
func (q GetLocationLogQuery) LocationName() string {
	return q.locationName
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLocationLogQueryIsNotConstructed if validation fails.
func (q GetLocationLogQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationLogQueryIsNotConstructed)
}

// LocationLogEntryResponse is one location log entry in the read model.
type LocationLogEntryResponse struct {
	Tick        int    `json:"tick"`
	Description string `json:"description"`
}
