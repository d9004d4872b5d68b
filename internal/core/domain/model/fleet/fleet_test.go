package fleet_test

import (
	"testing"

	"fleetsim/internal/core/domain/model/fleet"
	"fleetsim/internal/core/domain/model/location"
	"fleetsim/internal/core/domain/model/truck"
	"fleetsim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidFleet(t *testing.T, settings fleet.Settings) *fleet.Fleet {
	t.Helper()
	f, err := fleet.NewFleet(settings)
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

// scenarioSettings is a fully deterministic configuration: exact initial
// demand, no new demand, and a route gate that always fires.
func scenarioSettings() fleet.Settings {
	s := fleet.DefaultSettings()
	s.TruckCount = 1
	s.DepotCount = 1
	s.CustomerCount = 2
	s.TruckCapacity = 200
	s.DepotCapacity = 1000
	s.ProductionRate = 50
	s.InitialStock = 0
	s.InitialDemandMin = 100
	s.InitialDemandMax = 100
	s.DemandProbability = 0
	s.RouteProbability = 1
	return s
}

func TestNewFleet(t *testing.T) {
	t.Run("should build world with stable names", func(t *testing.T) {
		settings := fleet.DefaultSettings()
		settings.DepotCount = 2
		settings.CustomerCount = 3
		settings.TruckCount = 2

		f := createValidFleet(t, settings)

		assert.Equal(t, []string{"Depot-A", "Depot-B"}, f.DepotNames())
		assert.Equal(t, []string{"Customer-001", "Customer-002", "Customer-003"}, f.CustomerNames())

		trucks := f.Trucks()
		require.Len(t, trucks, 2)
		assert.Equal(t, "TRK-001", trucks[0].Name())
		assert.Equal(t, "TRK-002", trucks[1].Name())
	})

	t.Run("should park trucks round-robin across depots", func(t *testing.T) {
		settings := fleet.DefaultSettings()
		settings.DepotCount = 3
		settings.TruckCount = 5

		f := createValidFleet(t, settings)

		expected := []string{"Depot-A", "Depot-B", "Depot-C", "Depot-A", "Depot-B"}
		for i, tr := range f.Trucks() {
			assert.Equal(t, expected[i], tr.LocationName(), tr.Name())
		}
	})

	t.Run("should draw initial demand within the configured bounds", func(t *testing.T) {
		settings := fleet.DefaultSettings()
		settings.InitialDemandMin = 20
		settings.InitialDemandMax = 40

		f := createValidFleet(t, settings)

		for _, name := range f.CustomerNames() {
			customer, err := f.Location(name)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, customer.Demand(), 20)
			assert.LessOrEqual(t, customer.Demand(), 40)
		}
	})

	t.Run("should start every truck idle and empty at tick zero", func(t *testing.T) {
		f := createValidFleet(t, fleet.DefaultSettings())

		assert.Equal(t, 0, f.Tick())
		for _, tr := range f.Trucks() {
			assert.Equal(t, truck.IdleAtDepot, tr.Status())
			assert.Equal(t, 0, tr.Cargo())
			assert.False(t, tr.HasRoute())
		}
	})

	t.Run("should return aggregated errors for invalid settings", func(t *testing.T) {
		settings := fleet.DefaultSettings()
		settings.TruckCount = 0
		settings.DepotCount = 27
		settings.DemandProbability = 1.5

		f, err := fleet.NewFleet(settings)

		require.Error(t, err)
		assert.Nil(t, f)
		assert.Contains(t, err.Error(), "truck count")
		assert.Contains(t, err.Error(), "depot count")
		assert.Contains(t, err.Error(), "demand probability")
	})
}

func TestFleetLocation(t *testing.T) {
	f := createValidFleet(t, fleet.DefaultSettings())

	t.Run("should resolve known names", func(t *testing.T) {
		depot, err := f.Location("Depot-A")

		require.NoError(t, err)
		assert.Equal(t, location.Depot, depot.Kind())
	})

	t.Run("should return not found for unknown names", func(t *testing.T) {
		_, err := f.Location("Depot-Z")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestFleetTruckByName(t *testing.T) {
	f := createValidFleet(t, fleet.DefaultSettings())

	t.Run("should resolve known trucks", func(t *testing.T) {
		tr, err := f.TruckByName("TRK-001")

		require.NoError(t, err)
		assert.Equal(t, "TRK-001", tr.Name())
	})

	t.Run("should return not found for unknown trucks", func(t *testing.T) {
		_, err := f.TruckByName("TRK-999")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestFleetStep(t *testing.T) {
	t.Run("should advance the tick counter", func(t *testing.T) {
		f := createValidFleet(t, fleet.DefaultSettings())

		require.NoError(t, f.Step())
		require.NoError(t, f.Step())

		assert.Equal(t, 2, f.Tick())
	})

	t.Run("should produce before trucks load on the same tick", func(t *testing.T) {
		// The depot starts empty; if production ran after the trucks, the
		// first load tick could never take anything aboard.
		f := createValidFleet(t, scenarioSettings())

		// Tick 1: stock 50 after production, route assigned at end of tick.
		require.NoError(t, f.Step())

		tr := f.Trucks()[0]
		assert.True(t, tr.HasRoute())
		require.Len(t, tr.Route(), 1)
		assert.Equal(t, "Customer-001", tr.Route()[0].LocationName)
		assert.Equal(t, 50, tr.Route()[0].Quantity)

		// Ticks 2-3: PendingRoute, then loading what tick 3 production allows.
		require.NoError(t, f.Step())
		require.NoError(t, f.Step())

		assert.Equal(t, truck.LoadingAtDepot, tr.Status())
		assert.Equal(t, 50, tr.Cargo())
	})

	t.Run("should complete the scenario delivery cycle", func(t *testing.T) {
		f := createValidFleet(t, scenarioSettings())

		require.NoError(t, f.Run(9))

		tr := f.Trucks()[0]
		assert.Equal(t, truck.IdleAtDepot, tr.Status())
		assert.Equal(t, 0, tr.Cargo())

		first, err := f.Location("Customer-001")
		require.NoError(t, err)
		assert.Equal(t, 50, first.Delivered())
		assert.Equal(t, 50, first.Demand())

		second, err := f.Location("Customer-002")
		require.NoError(t, err)
		assert.Equal(t, 0, second.Delivered())
		assert.Equal(t, 100, second.Demand())

		// Back at the depot the gate fires again; the next route targets the
		// customer with the larger outstanding demand first.
		assert.True(t, tr.HasRoute())
		assert.Equal(t, "Customer-002", tr.Route()[0].LocationName)
	})

	t.Run("should log a wait entry for every idle tick", func(t *testing.T) {
		settings := scenarioSettings()
		settings.RouteProbability = 0
		f := createValidFleet(t, settings)

		require.NoError(t, f.Run(5))

		tr := f.Trucks()[0]
		events := tr.Events()
		require.Len(t, events, 6)
		for _, entry := range events[1:] {
			assert.Equal(t, truck.IdleAtDepot, entry.Status)
			assert.Equal(t, "idle at depot, no route assigned", entry.Comment)
		}

		// Waiting touches nothing: cargo stays empty and the depot keeps
		// every unit it produced.
		assert.Equal(t, 0, tr.Cargo())

		depot, err := f.Location("Depot-A")
		require.NoError(t, err)
		assert.Equal(t, 5*settings.ProductionRate, depot.Stock())
		assert.Equal(t, 5*settings.ProductionRate, depot.Produced())
	})

	t.Run("should return error on unconstructed fleet", func(t *testing.T) {
		var zero fleet.Fleet

		err := zero.Step()

		require.ErrorIs(t, err, fleet.ErrFleetIsNotConstructed)
	})
}

func TestFleetRun(t *testing.T) {
	t.Run("should advance the requested number of ticks", func(t *testing.T) {
		f := createValidFleet(t, fleet.DefaultSettings())

		require.NoError(t, f.Run(25))

		assert.Equal(t, 25, f.Tick())
	})

	t.Run("should return error for non-positive tick count", func(t *testing.T) {
		f := createValidFleet(t, fleet.DefaultSettings())

		require.Error(t, f.Run(0))
		require.Error(t, f.Run(-5))
	})
}

func TestFleetDeterminism(t *testing.T) {
	t.Run("should produce identical logs for identical seeds", func(t *testing.T) {
		settings := fleet.DefaultSettings()
		settings.Seed = 42

		first := createValidFleet(t, settings)
		second := createValidFleet(t, settings)

		require.NoError(t, first.Run(100))
		require.NoError(t, second.Run(100))

		firstTrucks := first.Trucks()
		secondTrucks := second.Trucks()
		require.Len(t, secondTrucks, len(firstTrucks))
		for i := range firstTrucks {
			assert.Equal(t, firstTrucks[i].Events(), secondTrucks[i].Events(), firstTrucks[i].Name())
		}

		for _, name := range first.CustomerNames() {
			firstLoc, err := first.Location(name)
			require.NoError(t, err)
			secondLoc, err := second.Location(name)
			require.NoError(t, err)
			assert.Equal(t, firstLoc.Events(), secondLoc.Events(), name)
		}

		for _, name := range first.DepotNames() {
			firstLoc, err := first.Location(name)
			require.NoError(t, err)
			secondLoc, err := second.Location(name)
			require.NoError(t, err)
			assert.Equal(t, firstLoc.Events(), secondLoc.Events(), name)
		}
	})

	t.Run("should diverge for different seeds", func(t *testing.T) {
		first := createValidFleet(t, fleet.DefaultSettings())

		settings := fleet.DefaultSettings()
		settings.Seed = 2
		second := createValidFleet(t, settings)

		require.NoError(t, first.Run(100))
		require.NoError(t, second.Run(100))

		var firstLog, secondLog []location.Event
		for _, name := range first.CustomerNames() {
			firstLoc, err := first.Location(name)
			require.NoError(t, err)
			firstLog = append(firstLog, firstLoc.Events()...)

			secondLoc, err := second.Location(name)
			require.NoError(t, err)
			secondLog = append(secondLog, secondLoc.Events()...)
		}

		assert.NotEqual(t, firstLog, secondLog)
	})
}

func TestFleetInvariants(t *testing.T) {
	t.Run("should conserve units across the whole run", func(t *testing.T) {
		settings := fleet.DefaultSettings()
		settings.TruckCount = 4
		settings.DepotCount = 2
		settings.CustomerCount = 6
		settings.InitialStock = 300
		f := createValidFleet(t, settings)

		require.NoError(t, f.Run(200))

		totalInitial := settings.InitialStock * settings.DepotCount
		produced, stock, cargo, delivered := 0, 0, 0, 0

		for _, name := range f.DepotNames() {
			depot, err := f.Location(name)
			require.NoError(t, err)
			produced += depot.Produced()
			stock += depot.Stock()
		}
		for _, tr := range f.Trucks() {
			cargo += tr.Cargo()
		}
		for _, name := range f.CustomerNames() {
			customer, err := f.Location(name)
			require.NoError(t, err)
			delivered += customer.Delivered()
		}

		assert.Equal(t, totalInitial+produced, stock+cargo+delivered)
	})

	t.Run("should keep quantities within bounds on every tick", func(t *testing.T) {
		settings := fleet.DefaultSettings()
		settings.TruckCount = 3
		settings.CustomerCount = 4
		f := createValidFleet(t, settings)

		for tick := 1; tick <= 100; tick++ {
			require.NoError(t, f.Step())

			for _, tr := range f.Trucks() {
				assert.GreaterOrEqual(t, tr.Cargo(), 0)
				assert.LessOrEqual(t, tr.Cargo(), tr.CargoCapacity())
			}
			for _, name := range f.DepotNames() {
				depot, err := f.Location(name)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, depot.Stock(), 0)
				assert.LessOrEqual(t, depot.Stock(), depot.Capacity())
			}
			for _, name := range f.CustomerNames() {
				customer, err := f.Location(name)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, customer.Demand(), 0)
			}
		}
	})

	t.Run("should only walk legal status transitions", func(t *testing.T) {
		f := createValidFleet(t, fleet.DefaultSettings())

		require.NoError(t, f.Run(150))

		for _, tr := range f.Trucks() {
			events := tr.Events()
			for i := 1; i < len(events); i++ {
				from := events[i-1].Status
				to := events[i].Status
				if from == to {
					continue
				}
				require.NoError(t, from.ValidateTransition(to),
					"%s: illegal transition %s -> %s at tick %d",
					tr.Name(), from, to, events[i].Tick)
			}
		}
	})
}
