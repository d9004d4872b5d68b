package queries_test

import (
	"context"
	"testing"

	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/core/domain/model/fleet"
	"fleetsim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createSteppedFleet(t *testing.T, ticks int) *fleet.Fleet {
	t.Helper()
	f, err := fleet.NewFleet(fleet.DefaultSettings())
	require.NoError(t, err)
	if ticks > 0 {
		require.NoError(t, f.Run(ticks))
	}
	return f
}

func TestGetTruckLogQuery(t *testing.T) {
	t.Run("should create query with valid truck name", func(t *testing.T) {
		query, err := queries.NewGetTruckLogQuery("TRK-001")

		require.NoError(t, err)
		assert.Equal(t, "TRK-001", query.TruckName())
		require.NoError(t, query.Validate())
	})

	t.Run("should return error for empty truck name", func(t *testing.T) {
		_, err := queries.NewGetTruckLogQuery("")

		require.Error(t, err)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var query queries.GetTruckLogQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetTruckLogQueryIsNotConstructed)
	})
}

func TestGetTruckLogQueryHandler(t *testing.T) {
	t.Run("should return the truck's log in append order", func(t *testing.T) {
		f := createSteppedFleet(t, 10)
		handler := queries.NewGetTruckLogQueryHandler(f)

		query, err := queries.NewGetTruckLogQuery("TRK-001")
		require.NoError(t, err)

		entries, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		// Creation entry plus one entry per tick at minimum.
		require.GreaterOrEqual(t, len(entries), 11)
		assert.Equal(t, 0, entries[0].Tick)
		assert.Contains(t, entries[0].Comment, "created at")
		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i].Tick, entries[i-1].Tick)
		}
	})

	t.Run("should return not found for unknown truck", func(t *testing.T) {
		f := createSteppedFleet(t, 0)
		handler := queries.NewGetTruckLogQueryHandler(f)

		query, err := queries.NewGetTruckLogQuery("TRK-999")
		require.NoError(t, err)

		_, handleErr := handler.Handle(context.Background(), query)

		require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
	})
}

func TestGetLocationLogQuery(t *testing.T) {
	t.Run("should create query with valid location name", func(t *testing.T) {
		query, err := queries.NewGetLocationLogQuery("Depot-A")

		require.NoError(t, err)
		assert.Equal(t, "Depot-A", query.LocationName())
		require.NoError(t, query.Validate())
	})

	t.Run("should return error for empty location name", func(t *testing.T) {
		_, err := queries.NewGetLocationLogQuery("")

		require.Error(t, err)
	})
}

func TestGetLocationLogQueryHandler(t *testing.T) {
	t.Run("should return a depot's production log", func(t *testing.T) {
		f := createSteppedFleet(t, 5)
		handler := queries.NewGetLocationLogQueryHandler(f)

		query, err := queries.NewGetLocationLogQuery("Depot-A")
		require.NoError(t, err)

		entries, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Equal(t, 0, entries[0].Tick)
		assert.Contains(t, entries[0].Description, "depot created")
	})

	t.Run("should return a customer's log", func(t *testing.T) {
		f := createSteppedFleet(t, 5)
		handler := queries.NewGetLocationLogQueryHandler(f)

		query, err := queries.NewGetLocationLogQuery("Customer-001")
		require.NoError(t, err)

		entries, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].Description, "customer created")
	})

	t.Run("should return not found for unknown location", func(t *testing.T) {
		f := createSteppedFleet(t, 0)
		handler := queries.NewGetLocationLogQueryHandler(f)

		query, err := queries.NewGetLocationLogQuery("Depot-Z")
		require.NoError(t, err)

		_, handleErr := handler.Handle(context.Background(), query)

		require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
	})
}

func TestGetFleetSnapshotQueryHandler(t *testing.T) {
	t.Run("should snapshot the whole fleet in name order", func(t *testing.T) {
		f := createSteppedFleet(t, 20)
		handler := queries.NewGetFleetSnapshotQueryHandler(f)

		snapshot, err := handler.Handle(context.Background(), queries.NewGetFleetSnapshotQuery())

		require.NoError(t, err)
		assert.Equal(t, 20, snapshot.Tick)

		require.Len(t, snapshot.Trucks, fleet.DefaultTruckCount)
		assert.Equal(t, "TRK-001", snapshot.Trucks[0].Name)

		require.Len(t, snapshot.Depots, fleet.DefaultDepotCount)
		assert.Equal(t, "Depot-A", snapshot.Depots[0].Name)

		require.Len(t, snapshot.Customers, fleet.DefaultCustomerCount)
		assert.Equal(t, "Customer-001", snapshot.Customers[0].Name)
		for i := 1; i < len(snapshot.Customers); i++ {
			assert.Less(t, snapshot.Customers[i-1].Name, snapshot.Customers[i].Name)
		}
	})

	t.Run("should reflect current quantities", func(t *testing.T) {
		f := createSteppedFleet(t, 20)
		handler := queries.NewGetFleetSnapshotQueryHandler(f)

		snapshot, err := handler.Handle(context.Background(), queries.NewGetFleetSnapshotQuery())

		require.NoError(t, err)
		for _, tr := range snapshot.Trucks {
			assert.GreaterOrEqual(t, tr.Cargo, 0)
			assert.LessOrEqual(t, tr.Cargo, tr.CargoCapacity)
		}
		for _, depot := range snapshot.Depots {
			assert.GreaterOrEqual(t, depot.Stock, 0)
			assert.LessOrEqual(t, depot.Stock, depot.Capacity)
		}
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		f := createSteppedFleet(t, 0)
		handler := queries.NewGetFleetSnapshotQueryHandler(f)

		var query queries.GetFleetSnapshotQuery
		_, err := handler.Handle(context.Background(), query)

		require.ErrorIs(t, err, queries.ErrGetFleetSnapshotQueryIsNotConstructed)
	})
}
