package commands

import (
	"context"

	"fleetsim/internal/core/domain/model/fleet"
)

// RunSimulationCommandHandler drives a complete batch run: a fixed number
// of ticks against the owned fleet. Cancellation is honored between ticks,
// never inside one, so the fleet is always left at a tick boundary.
type RunSimulationCommandHandler struct {
	fleet *fleet.Fleet
}

// NewRunSimulationCommandHandler creates a handler bound to a fleet.
func NewRunSimulationCommandHandler(fleet *fleet.Fleet) RunSimulationCommandHandler {
	return RunSimulationCommandHandler{
		fleet: fleet,
	}
}

// Handle processes the run command, stepping the fleet tick by tick.
func (h *RunSimulationCommandHandler) Handle(ctx context.Context, cmd RunSimulationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for range cmd.Ticks() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h.fleet.Step(); err != nil {
			return err
		}
	}

	return nil
}
