package queries

import (
	"context"

	"fleetsim/internal/core/domain/model/fleet"
)

// GetFleetSnapshotQueryHandler assembles the whole-fleet snapshot from the
// in-memory fleet.
type GetFleetSnapshotQueryHandler struct {
	fleet *fleet.Fleet
}

// NewGetFleetSnapshotQueryHandler creates a handler bound to a fleet.
func NewGetFleetSnapshotQueryHandler(fleet *fleet.Fleet) GetFleetSnapshotQueryHandler {
	return GetFleetSnapshotQueryHandler{fleet: fleet}
}

// Handle executes the query, reading every registry in name order.
func (h GetFleetSnapshotQueryHandler) Handle(
	_ context.Context,
	query GetFleetSnapshotQuery,
) (GetFleetSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetSnapshotQueryResponse{}, err
	}

	response := GetFleetSnapshotQueryResponse{
		Tick: h.fleet.Tick(),
	}

	for _, tr := range h.fleet.Trucks() {
		response.Trucks = append(response.Trucks, TruckSnapshotResponse{
			Name:          tr.Name(),
			Status:        tr.Status().String(),
			Location:      tr.LocationName(),
			Cargo:         tr.Cargo(),
			CargoCapacity: tr.CargoCapacity(),
			RouteStops:    len(tr.Route()),
		})
	}

	for _, name := range h.fleet.DepotNames() {
		depot, err := h.fleet.Location(name)
		if err != nil {
			return GetFleetSnapshotQueryResponse{}, err
		}
		response.Depots = append(response.Depots, DepotSnapshotResponse{
			Name:     depot.Name(),
			Stock:    depot.Stock(),
			Capacity: depot.Capacity(),
			Produced: depot.Produced(),
		})
	}

	for _, name := range h.fleet.CustomerNames() {
		customer, err := h.fleet.Location(name)
		if err != nil {
			return GetFleetSnapshotQueryResponse{}, err
		}
		response.Customers = append(response.Customers, CustomerSnapshotResponse{
			Name:      customer.Name(),
			Demand:    customer.Demand(),
			Delivered: customer.Delivered(),
		})
	}

	return response, nil
}
