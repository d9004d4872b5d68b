package jobs

import (
	"context"
	"log/slog"

	"fleetsim/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SimulationTickJob advances the simulation one tick on a fixed schedule.
// Runs every second so the live server mode progresses in real time.
type SimulationTickJob struct {
	handler commands.StepSimulationCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSimulationTickJob creates a new job for advancing the simulation.
// Uses StepSimulationCommandHandler to execute one tick every second.
func NewSimulationTickJob(handler commands.StepSimulationCommandHandler, logger *slog.Logger) *SimulationTickJob {
	return &SimulationTickJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "simulation_tick_job"),
	}
}

// Start begins the simulation tick job to run every second.
func (j *SimulationTickJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewStepSimulationCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Simulation tick job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Simulation tick job started (running every second)")
	return nil
}

// Stop stops the simulation tick job.
func (j *SimulationTickJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Simulation tick job stopped")
}
