package http

import (
	"errors"
	"net/http"

	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server exposes the simulation over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	stepSimulationHandler commands.StepSimulationCommandHandler

	// Query handlers
	getFleetSnapshotHandler queries.GetFleetSnapshotQueryHandler
	getTruckLogHandler      queries.GetTruckLogQueryHandler
	getLocationLogHandler   queries.GetLocationLogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	stepSimulationHandler commands.StepSimulationCommandHandler,
	getFleetSnapshotHandler queries.GetFleetSnapshotQueryHandler,
	getTruckLogHandler queries.GetTruckLogQueryHandler,
	getLocationLogHandler queries.GetLocationLogQueryHandler,
) *Server {
	return &Server{
		stepSimulationHandler:   stepSimulationHandler,
		getFleetSnapshotHandler: getFleetSnapshotHandler,
		getTruckLogHandler:      getTruckLogHandler,
		getLocationLogHandler:   getLocationLogHandler,
	}
}

// RegisterRoutes attaches all simulation routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/snapshot", s.GetSnapshot)
	e.POST("/api/v1/step", s.StepSimulation)
	e.GET("/api/v1/trucks/:name/log", s.GetTruckLog)
	e.GET("/api/v1/locations/:name/log", s.GetLocationLog)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetSnapshot handles GET /api/v1/snapshot - current state of every truck,
// depot and customer.
func (s *Server) GetSnapshot(ctx echo.Context) error {
	query := queries.NewGetFleetSnapshotQuery()

	snapshot, err := s.getFleetSnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve snapshot",
		})
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// StepSimulation handles POST /api/v1/step - advances the simulation one tick.
func (s *Server) StepSimulation(ctx echo.Context) error {
	cmd := commands.NewStepSimulationCommand()

	if handleErr := s.stepSimulationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to advance simulation",
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetTruckLog handles GET /api/v1/trucks/:name/log - full activity log of one
// truck.
func (s *Server) GetTruckLog(ctx echo.Context) error {
	query, err := queries.NewGetTruckLogQuery(ctx.Param("name"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid truck name: " + err.Error(),
		})
	}

	entries, err := s.getTruckLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Truck not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve truck log",
		})
	}

	return ctx.JSON(http.StatusOK, entries)
}

// GetLocationLog handles GET /api/v1/locations/:name/log - full event log of
// one depot or customer.
func (s *Server) GetLocationLog(ctx echo.Context) error {
	query, err := queries.NewGetLocationLogQuery(ctx.Param("name"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location name: " + err.Error(),
		})
	}

	entries, err := s.getLocationLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Location not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve location log",
		})
	}

	return ctx.JSON(http.StatusOK, entries)
}
