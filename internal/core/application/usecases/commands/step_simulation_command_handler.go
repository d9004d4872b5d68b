package commands

import (
	"context"

	"fleetsim/internal/core/domain/model/fleet"
)

// StepSimulationCommandHandler advances the owned fleet by one tick per
// command. The fleet aggregate is the single source of truth for the run;
// the handler adds nothing beyond command validation.
type StepSimulationCommandHandler struct {
	fleet *fleet.Fleet
}

// NewStepSimulationCommandHandler creates a handler bound to a fleet.
func NewStepSimulationCommandHandler(fleet *fleet.Fleet) StepSimulationCommandHandler {
	return StepSimulationCommandHandler{
		fleet: fleet,
	}
}

// Handle processes the step command: one tick, four phases, in order.
// The context is accepted for interface symmetry with the other handlers;
// a tick is not cancellable once begun.
func (h *StepSimulationCommandHandler) Handle(_ context.Context, cmd StepSimulationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.fleet.Step()
}
