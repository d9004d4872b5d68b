package queries

import (
	"context"

	"fleetsim/internal/core/domain/model/fleet"
)

// GetTruckLogQueryHandler reads one truck's event log from the in-memory
// fleet. Logs are the product of a run; the handler only reshapes them
// into the read model.
type GetTruckLogQueryHandler struct {
	fleet *fleet.Fleet
}

// NewGetTruckLogQueryHandler creates a handler bound to a fleet.
func NewGetTruckLogQueryHandler(fleet *fleet.Fleet) GetTruckLogQueryHandler {
	return GetTruckLogQueryHandler{fleet: fleet}
}

// Handle executes the query. Returns the truck's log entries in append
// order, or an ObjectNotFoundError for an unknown truck name.
func (h GetTruckLogQueryHandler) Handle(
	_ context.Context,
	query GetTruckLogQuery,
) ([]TruckLogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tr, err := h.fleet.TruckByName(query.TruckName())
	if err != nil {
		return nil, err
	}

	events := tr.Events()
	entries := make([]TruckLogEntryResponse, 0, len(events))
	for _, e := range events {
		entries = append(entries, TruckLogEntryResponse{
			Tick:     e.Tick,
			Status:   e.Status.String(),
			Location: e.Location,
			Cargo:    e.Cargo,
			Comment:  e.Comment,
		})
	}

	return entries, nil
}
