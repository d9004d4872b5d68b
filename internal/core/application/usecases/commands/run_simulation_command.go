package commands

import (
	"errors"

	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

// RunSimulationCommand advances the simulation by a fixed number of ticks.
// Used by the batch mode, where the full run length is known upfront.
//
// Example:
//
//	cmd, err := NewRunSimulationCommand(50)
//	if err != nil {
//	    return err
//	}
//	handler := NewRunSimulationCommandHandler(fleet)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("simulation run failed: %w", err)
//	}
type RunSimulationCommand struct {
	ticks int
	guard guard.ConstructorGuard
}

var ErrRunSimulationCommandIsNotConstructed = errors.New(
	"RunSimulationCommand must be created via NewRunSimulationCommand constructor",
)

// NewRunSimulationCommand creates a command to run the simulation for the
// given number of ticks. The tick count must be positive.
func NewRunSimulationCommand(ticks int) (RunSimulationCommand, error) {
	if ticks <= 0 {
		return RunSimulationCommand{}, errs.NewValueIsOutOfRangeError("ticks", ticks, 1, "unbounded")
	}

	return RunSimulationCommand{
		ticks: ticks,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Ticks returns the number of ticks the run should last.
func (c *RunSimulationCommand) Ticks() int {
	return c.ticks
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunSimulationCommandIsNotConstructed if validation fails.
func (c *RunSimulationCommand) Validate() error {
	return c.guard.Validate(ErrRunSimulationCommandIsNotConstructed)
}
