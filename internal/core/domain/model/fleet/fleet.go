package fleet

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/core/domain/model/location"
	"fleetsim/internal/core/domain/model/truck"
	"fleetsim/internal/core/domain/services"
	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

// ErrFleetIsNotConstructed is returned when using an improperly initialized Fleet.
var ErrFleetIsNotConstructed = errors.New("Fleet must be created via NewFleet constructor")

// Fleet is the aggregate root of a simulation run. It owns the registries
// of locations and trucks, the tick counter, and the seeded random source,
// and it sequences the four per-tick phases.
//
// Key responsibilities:
//   - Constructing the world from Settings with stable names and a
//     deterministic truck-to-depot distribution
//   - Advancing simulation time (Step/Run) with the fixed phase order
//   - Resolving location names for trucks (it implements truck.World)
//   - Gating and assigning routes to idle trucks
//
// All traversals are in name order over slices sorted once at
// construction; maps are used only for lookup, never for iteration.
type Fleet struct {
	// settings are the construction parameters of the run
	settings Settings
	// tick is the number of completed simulation steps
	tick int
	// rng is the single pseudo-random source of the run
	rng *rand.Rand
	// locations indexes every location by its stable name
	locations map[string]*location.Location
	// depotNames and customerNames fix the traversal order
	depotNames    []string
	customerNames []string
	// trucks are held in name order; truckIndex only serves lookups
	trucks     []*truck.Truck
	truckIndex map[string]*truck.Truck
	// planner builds routes during the assignment phase
	planner services.RoutePlanner
	// guard ensures the fleet was properly constructed
	guard guard.ConstructorGuard
}

// NewFleet builds a simulation world from the given settings.
//
// Depots are named Depot-A upward, customers Customer-001 upward, trucks
// TRK-001 upward. Trucks are parked round-robin across the depots in name
// order, so construction itself consumes no randomness beyond the initial
// customer demand draws (made in customer name order).
//
// A settings violation is a fatal configuration error; no partially
// constructed fleet is ever returned.
func NewFleet(settings Settings) (*Fleet, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	f := &Fleet{
		settings:   settings,
		rng:        rand.New(rand.NewPCG(settings.Seed, 0)),
		locations:  make(map[string]*location.Location),
		truckIndex: make(map[string]*truck.Truck),
		planner:    services.NewRoutePlanner(),
		guard:      guard.NewConstructorGuard(),
	}

	for i := range settings.DepotCount {
		name := fmt.Sprintf("Depot-%c", 'A'+i)
		depot, err := location.NewDepot(kernel.NewUUID(), name,
			settings.DepotCapacity, settings.ProductionRate, settings.InitialStock)
		if err != nil {
			return nil, err
		}
		f.locations[name] = depot
		f.depotNames = append(f.depotNames, name)
	}

	for i := range settings.CustomerCount {
		name := fmt.Sprintf("Customer-%03d", i+1)
		demand := settings.InitialDemandMin
		if settings.InitialDemandMax > settings.InitialDemandMin {
			demand += f.rng.IntN(settings.InitialDemandMax - settings.InitialDemandMin + 1)
		}

		customer, err := location.NewCustomer(kernel.NewUUID(), name, demand)
		if err != nil {
			return nil, err
		}
		f.locations[name] = customer
		f.customerNames = append(f.customerNames, name)
	}

	sort.Strings(f.depotNames)
	sort.Strings(f.customerNames)

	for i := range settings.TruckCount {
		name := fmt.Sprintf("TRK-%03d", i+1)
		startDepot := f.depotNames[i%len(f.depotNames)]

		tr, err := truck.NewTruck(kernel.NewUUID(), name, settings.TruckCapacity, startDepot)
		if err != nil {
			return nil, err
		}
		f.trucks = append(f.trucks, tr)
		f.truckIndex[name] = tr
	}

	sort.Slice(f.trucks, func(i, j int) bool { return f.trucks[i].Name() < f.trucks[j].Name() })

	return f, nil
}

// Location resolves a location name against the registry, implementing
// truck.World. An unknown name is a configuration fault: routes only ever
// carry names the fleet itself handed out.
func (f *Fleet) Location(name string) (*location.Location, error) {
	loc, ok := f.locations[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("location", name)
	}
	return loc, nil
}

// Step advances the simulation by one tick, running the four phases in
// their contractual order:
//
//  1. Production: every depot produces, so stock is available to trucks
//     loading this same tick.
//  2. Truck stepping: every truck advances one state-machine transition,
//     in name order.
//  3. Demand generation: every customer rolls for new demand, after the
//     trucks moved so a truck never sees demand born the tick it serves.
//  4. Route assignment: idle routeless trucks roll the assignment gate
//     and receive greedily planned routes against the freshest demand.
func (f *Fleet) Step() error {
	if err := f.Validate(); err != nil {
		return err
	}

	f.tick++

	for _, name := range f.depotNames {
		if err := f.locations[name].Produce(f.tick); err != nil {
			return err
		}
	}

	for _, tr := range f.trucks {
		if err := tr.Step(f.tick, f); err != nil {
			return err
		}
	}

	for _, name := range f.customerNames {
		err := f.locations[name].GenerateDemand(f.tick, f.rng,
			f.settings.DemandProbability, f.settings.DemandMin, f.settings.DemandMax)
		if err != nil {
			return err
		}
	}

	return f.assignRoutes()
}

// Run advances the simulation by the given number of ticks.
func (f *Fleet) Run(ticks int) error {
	if ticks <= 0 {
		return errs.NewValueIsOutOfRangeError("ticks", ticks, 1, "unbounded")
	}

	for range ticks {
		if err := f.Step(); err != nil {
			return err
		}
	}
	return nil
}

// assignRoutes is the fourth phase: every truck idling at a depot with no
// route rolls the probability gate, and on success gets a route planned
// from its depot's stock against the customers' outstanding demand. The
// gate is rolled before planning so the random stream advances identically
// whether or not a plan comes out.
func (f *Fleet) assignRoutes() error {
	for _, tr := range f.trucks {
		if tr.Status() != truck.IdleAtDepot || tr.HasRoute() {
			continue
		}
		if f.rng.Float64() >= f.settings.RouteProbability {
			continue
		}

		depot, err := f.Location(tr.LocationName())
		if err != nil {
			return err
		}

		customers := make([]*location.Location, 0, len(f.customerNames))
		for _, name := range f.customerNames {
			customers = append(customers, f.locations[name])
		}

		stops, err := f.planner.Plan(depot, customers, tr.FreeCapacity())
		if err != nil {
			return err
		}
		if len(stops) == 0 {
			continue
		}

		if err := tr.AssignRoute(f.tick, stops); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks if the Fleet was properly constructed via NewFleet.
// The zero value is invalid.
func (f *Fleet) Validate() error {
	if f == nil {
		return ErrFleetIsNotConstructed
	}
	return f.guard.Validate(ErrFleetIsNotConstructed)
}

// Tick returns the number of completed simulation steps.
func (f *Fleet) Tick() int {
	return f.tick
}

// Settings returns the construction parameters of the run.
func (f *Fleet) Settings() Settings {
	return f.settings
}

// DepotNames returns the depot names in traversal order.
func (f *Fleet) DepotNames() []string {
	out := make([]string, len(f.depotNames))
	copy(out, f.depotNames)
	return out
}

// CustomerNames returns the customer names in traversal order.
func (f *Fleet) CustomerNames() []string {
	out := make([]string, len(f.customerNames))
	copy(out, f.customerNames)
	return out
}

// Trucks returns the trucks in traversal (name) order.
func (f *Fleet) Trucks() []*truck.Truck {
	out := make([]*truck.Truck, len(f.trucks))
	copy(out, f.trucks)
	return out
}

// TruckByName resolves a truck name against the registry.
func (f *Fleet) TruckByName(name string) (*truck.Truck, error) {
	tr, ok := f.truckIndex[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("truck", name)
	}
	return tr, nil
}
