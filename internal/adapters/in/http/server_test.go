package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "fleetsim/internal/adapters/in/http"
	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/core/domain/model/fleet"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	f, err := fleet.NewFleet(fleet.DefaultSettings())
	require.NoError(t, err)
	require.NoError(t, f.Run(10))

	server := httpadapter.NewServer(
		commands.NewStepSimulationCommandHandler(f),
		queries.NewGetFleetSnapshotQueryHandler(f),
		queries.NewGetTruckLogQueryHandler(f),
		queries.NewGetLocationLogQueryHandler(f),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetHealth(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestGetSnapshot(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/snapshot")

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot queries.GetFleetSnapshotQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 10, snapshot.Tick)
	assert.Len(t, snapshot.Trucks, fleet.DefaultTruckCount)
	assert.Len(t, snapshot.Depots, fleet.DefaultDepotCount)
	assert.Len(t, snapshot.Customers, fleet.DefaultCustomerCount)
}

func TestStepSimulation(t *testing.T) {
	e := createTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/step")
	require.Equal(t, http.StatusAccepted, rec.Code)

	snapshotRec := doRequest(t, e, http.MethodGet, "/api/v1/snapshot")
	var snapshot queries.GetFleetSnapshotQueryResponse
	require.NoError(t, json.Unmarshal(snapshotRec.Body.Bytes(), &snapshot))
	assert.Equal(t, 11, snapshot.Tick)
}

func TestGetTruckLog(t *testing.T) {
	e := createTestServer(t)

	t.Run("should return log for known truck", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/trucks/TRK-001/log")

		require.Equal(t, http.StatusOK, rec.Code)

		var entries []queries.TruckLogEntryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		assert.NotEmpty(t, entries)
	})

	t.Run("should return 404 for unknown truck", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/trucks/TRK-999/log")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetLocationLog(t *testing.T) {
	e := createTestServer(t)

	t.Run("should return log for known location", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/locations/Depot-A/log")

		require.Equal(t, http.StatusOK, rec.Code)

		var entries []queries.LocationLogEntryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		assert.NotEmpty(t, entries)
	})

	t.Run("should return 404 for unknown location", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/locations/Depot-Z/log")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
