package queries

import (
	"context"

	"fleetsim/internal/core/domain/model/fleet"
)

// GetLocationLogQueryHandler reads one location's event log from the
// in-memory fleet.
type GetLocationLogQueryHandler struct {
	fleet *fleet.Fleet
}

// NewGetLocationLogQueryHandler creates a handler bound to a fleet.
func NewGetLocationLogQueryHandler(fleet *fleet.Fleet) GetLocationLogQueryHandler {
	return GetLocationLogQueryHandler{fleet: fleet}
}

// Handle executes the query. Returns the location's log entries in append
// order, or an ObjectNotFoundError for an unknown location name.
func (h GetLocationLogQueryHandler) Handle(
	_ context.Context,
	query GetLocationLogQuery,
) ([]LocationLogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loc, err := h.fleet.Location(query.LocationName())
	if err != nil {
		return nil, err
	}

	events := loc.Events()
	entries := make([]LocationLogEntryResponse, 0, len(events))
	for _, e := range events {
		entries = append(entries, LocationLogEntryResponse{
			Tick:        e.Tick,
			Description: e.Description,
		})
	}

	return entries, nil
}
