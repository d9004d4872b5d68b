package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	httpadapter "fleetsim/internal/adapters/in/http"
	"fleetsim/internal/jobs"
)

// ServeCmd returns the live mode command. It starts an HTTP server and a
// background job that advances the simulation one tick per second.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation over HTTP, advancing in real time",
		Long: `Build a fleet from the environment configuration, advance it one tick
per second and serve its state over HTTP.

Endpoints:
  GET  /health                       liveness probe
  GET  /api/v1/snapshot              current fleet state
  POST /api/v1/step                  advance one extra tick
  GET  /api/v1/trucks/:name/log      activity log of one truck
  GET  /api/v1/locations/:name/log   event log of one depot or customer`,
		RunE: serveSimulation,
	}

	cmd.Flags().String("port", "", "HTTP port (overrides HTTP_PORT)")

	return cmd
}

func serveSimulation(cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetString("port")

	config := getConfigs()
	if port != "" {
		config.HTTPPort = port
	}

	root, err := NewCompositionRoot(config)
	if err != nil {
		return fmt.Errorf("failed to build simulation: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(root.CreateStepSimulationCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start background jobs: %w", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(
		root.CreateStepSimulationCommandHandler(),
		root.CreateGetFleetSnapshotQueryHandler(),
		root.CreateGetTruckLogQueryHandler(),
		root.CreateGetLocationLogQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
