package queries

import (
	"errors"

	"fleetsim/internal/pkg/guard"
)

var ErrGetFleetSnapshotQueryIsNotConstructed = errors.New(
	"GetFleetSnapshotQuery must be created via NewGetFleetSnapshotQuery constructor",
)

// GetFleetSnapshotQuery retrieves the current state of every truck, depot
// and customer at a tick boundary. This is the snapshot surface of the
// simulation; consumers needing history use the log queries instead.
type GetFleetSnapshotQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetSnapshotQuery creates a snapshot query.
// This is a parameterless query covering the whole fleet.
func NewGetFleetSnapshotQuery() GetFleetSnapshotQuery {
	return GetFleetSnapshotQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFleetSnapshotQueryIsNotConstructed if validation fails.
func (q GetFleetSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetSnapshotQueryIsNotConstructed)
}

// TruckSnapshotResponse is one truck's current state in the read model.
type TruckSnapshotResponse struct {
	Name          string `json:"name"`
	Status        string `json:"status"`
	Location      string `json:"location"`
	Cargo         int    `json:"cargo"`
	CargoCapacity int    `json:"cargoCapacity"`
	RouteStops    int    `json:"routeStops"`
}

// DepotSnapshotResponse is one depot's current state in the read model.
// Produced is cumulative over the run.
type DepotSnapshotResponse struct {
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	Capacity int    `json:"capacity"`
	Produced int    `json:"produced"`
}

// CustomerSnapshotResponse is one customer's current state in the read
// model. Delivered is cumulative over the run.
type CustomerSnapshotResponse struct {
	Name      string `json:"name"`
	Demand    int    `json:"demand"`
	Delivered int    `json:"delivered"`
}

// GetFleetSnapshotQueryResponse is the whole-fleet snapshot at a tick
// boundary. Collections are ordered by name, matching the simulation's
// traversal order.
type GetFleetSnapshotQueryResponse struct {
	Tick      int                        `json:"tick"`
	Trucks    []TruckSnapshotResponse    `json:"trucks"`
	Depots    []DepotSnapshotResponse    `json:"depots"`
	Customers []CustomerSnapshotResponse `json:"customers"`
}
