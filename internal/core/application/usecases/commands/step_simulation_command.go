// Package commands contains write operations that advance the simulation.
// Implements the Command pattern for state-changing operations in the CQRS
// architecture: each command is a validated, guard-protected value handled
// by a dedicated handler.
package commands

import (
	"errors"

	"fleetsim/internal/pkg/guard"
)

// StepSimulationCommand advances the simulation by exactly one tick.
// The driving layer (a scheduler in live mode, a loop in batch mode)
// issues one of these per tick.
//
// Example:
//
//	cmd := NewStepSimulationCommand()
//	handler := NewStepSimulationCommandHandler(fleet)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("tick failed: %v", err)
//	}
type StepSimulationCommand struct {
	guard guard.ConstructorGuard
}

var ErrStepSimulationCommandIsNotConstructed = errors.New(
	"StepSimulationCommand must be created via NewStepSimulationCommand constructor",
)

// NewStepSimulationCommand creates a command to advance the simulation one tick.
// This is a parameterless command.
func NewStepSimulationCommand() StepSimulationCommand {
	return StepSimulationCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrStepSimulationCommandIsNotConstructed if validation fails.
func (c *StepSimulationCommand) Validate() error {
	return c.guard.Validate(ErrStepSimulationCommandIsNotConstructed)
}
