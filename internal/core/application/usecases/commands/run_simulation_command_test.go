package commands_test

import (
	"context"
	"testing"

	"fleetsim/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunSimulationCommand(t *testing.T) {
	t.Run("should create command with positive tick count", func(t *testing.T) {
		cmd, err := commands.NewRunSimulationCommand(50)

		require.NoError(t, err)
		assert.Equal(t, 50, cmd.Ticks())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should return error for non-positive tick count", func(t *testing.T) {
		_, err := commands.NewRunSimulationCommand(0)
		require.Error(t, err)

		_, err = commands.NewRunSimulationCommand(-10)
		require.Error(t, err)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var cmd commands.RunSimulationCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRunSimulationCommandIsNotConstructed)
	})
}

func TestRunSimulationCommandHandler(t *testing.T) {
	t.Run("should advance the fleet by the requested ticks", func(t *testing.T) {
		f := createValidFleet(t)
		handler := commands.NewRunSimulationCommandHandler(f)

		cmd, err := commands.NewRunSimulationCommand(25)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), cmd))
		assert.Equal(t, 25, f.Tick())
	})

	t.Run("should stop at a tick boundary on cancellation", func(t *testing.T) {
		f := createValidFleet(t)
		handler := commands.NewRunSimulationCommandHandler(f)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cmd, err := commands.NewRunSimulationCommand(25)
		require.NoError(t, err)

		handleErr := handler.Handle(ctx, cmd)

		require.ErrorIs(t, handleErr, context.Canceled)
		assert.Equal(t, 0, f.Tick())
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		f := createValidFleet(t)
		handler := commands.NewRunSimulationCommandHandler(f)

		var cmd commands.RunSimulationCommand
		err := handler.Handle(context.Background(), cmd)

		require.ErrorIs(t, err, commands.ErrRunSimulationCommandIsNotConstructed)
	})
}
