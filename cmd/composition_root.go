package cmd

import (
	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/core/domain/model/fleet"
)

// CompositionRoot wires the application together. It owns the single fleet
// instance and hands out use case handlers bound to it.
type CompositionRoot struct {
	fleet *fleet.Fleet
}

// NewCompositionRoot builds the fleet from the configured settings and
// returns the assembled root. A settings violation is returned unwrapped so
// callers can print the full aggregate.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	fl, err := fleet.NewFleet(config.Settings)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{fleet: fl}, nil
}

// Fleet exposes the simulation state for read-only reporting.
func (c *CompositionRoot) Fleet() *fleet.Fleet {
	return c.fleet
}

func (c *CompositionRoot) CreateStepSimulationCommandHandler() commands.StepSimulationCommandHandler {
	return commands.NewStepSimulationCommandHandler(c.fleet)
}

func (c *CompositionRoot) CreateRunSimulationCommandHandler() commands.RunSimulationCommandHandler {
	return commands.NewRunSimulationCommandHandler(c.fleet)
}

func (c *CompositionRoot) CreateGetFleetSnapshotQueryHandler() queries.GetFleetSnapshotQueryHandler {
	return queries.NewGetFleetSnapshotQueryHandler(c.fleet)
}

func (c *CompositionRoot) CreateGetTruckLogQueryHandler() queries.GetTruckLogQueryHandler {
	return queries.NewGetTruckLogQueryHandler(c.fleet)
}

func (c *CompositionRoot) CreateGetLocationLogQueryHandler() queries.GetLocationLogQueryHandler {
	return queries.NewGetLocationLogQueryHandler(c.fleet)
}
