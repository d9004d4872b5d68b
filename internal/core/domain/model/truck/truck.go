package truck

import (
	"errors"
	"fmt"

	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/core/domain/model/location"
	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

// Domain errors for truck operations.
var (
	// ErrNameIsRequired is returned when attempting to create a truck without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCargoCapacityIsRequired is returned when attempting to create a truck with invalid capacity (≤0).
	ErrCargoCapacityIsRequired = errs.NewValueIsRequiredError("cargo capacity")
	// ErrStartDepotIsRequired is returned when attempting to create a truck without a starting depot.
	ErrStartDepotIsRequired = errs.NewValueIsRequiredError("start depot")
	// ErrTruckIsNotConstructed is returned when using an improperly initialized Truck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")
	// ErrRouteAlreadyAssigned is returned when assigning a route to a truck that
	// is not idle at a depot with an empty route.
	ErrRouteAlreadyAssigned = errors.New("truck already has a route or is not idle at a depot")
	// ErrEmptyRoute is returned when assigning a route with no stops.
	ErrEmptyRoute = errs.NewValueIsRequiredError("route stops")
)

// World resolves location names to live location aggregates. The fleet
// orchestrator implements it; tests supply fakes. A failed resolution is a
// configuration fault, not a runtime condition: routes only ever carry
// names validated at construction.
type World interface {
	Location(name string) (*location.Location, error)
}

// Truck is the mobile agent of the simulation. It owns its cargo manifest,
// its current route, its state-machine status, and its own append-only
// event log.
//
// Key responsibilities:
//   - Advancing exactly one state-machine transition per tick (Step)
//   - Loading at depots with capacity clamping and unloading at customers
//     with the retained-remainder policy
//   - Recording one log entry per tick, no-op waits included
//
// Business rules:
//   - 0 ≤ cargo ≤ cargoCapacity at all times
//   - A truck is always "at" some location; while EnRoute its location is
//     the destination it will be observed arriving at next tick
//   - Side effects are confined to the truck itself and the single
//     location it touches on that tick; no other truck's state is read
//     or written
type Truck struct {
	// id uniquely identifies the truck for the run
	id kernel.UUID
	// name is the stable identifier (e.g. "TRK-001") used in logs and ordering
	name string
	// cargoCapacity is the maximum number of units the truck can carry
	cargoCapacity int
	// cargo is the number of units currently aboard
	cargo int
	// locationName is the name of the location the truck is at (weak reference)
	locationName string
	// depotName is the depot the active route departs from and returns to;
	// empty when no route is active
	depotName string
	// status is the current state-machine state
	status Status
	// route is the remaining sequence of customer stops
	route []RouteStop
	// events is the append-only log of the truck's activity
	events []LogEntry
	// guard ensures the truck was properly constructed
	guard guard.ConstructorGuard
}

// NewTruck creates a truck parked at the given depot in IdleAtDepot status
// with an empty cargo hold and no route.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: stable identifier (must be non-empty)
//   - cargoCapacity: maximum cargo (must be positive)
//   - startDepot: name of the depot the truck starts at (must be non-empty;
//     the orchestrator checks it against its registry)
func NewTruck(id kernel.UUID, name string, cargoCapacity int, startDepot string) (*Truck, error) {
	t := &Truck{
		status: IdleAtDepot,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setCargoCapacity(cargoCapacity),
		t.setStartDepot(startDepot),
	); err != nil {
		return nil, err
	}

	t.record(0, fmt.Sprintf("created at %s with cargo capacity %d", t.locationName, t.cargoCapacity))
	return t, nil
}

// AssignRoute commits the truck to a route of customer stops departing
// from and implicitly returning to its current depot. Only a truck that is
// IdleAtDepot with no route can accept one; the truck stays IdleAtDepot
// until its next tick, when the PendingRoute transition fires.
func (t *Truck) AssignRoute(tick int, stops []RouteStop) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.status != IdleAtDepot || len(t.route) > 0 {
		return ErrRouteAlreadyAssigned
	}
	if len(stops) == 0 {
		return ErrEmptyRoute
	}
	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return err
		}
	}

	t.route = make([]RouteStop, len(stops))
	copy(t.route, stops)
	t.depotName = t.locationName
	t.record(tick, fmt.Sprintf("route assigned with %d stops, first stop %s", len(stops), stops[0].LocationName))
	return nil
}

// Step advances the truck's state machine by exactly one transition,
// evaluated in priority order: arrival resolution first, then serving the
// current customer, then departures, then the depot-side loading sequence,
// and finally the idle no-op wait. Exactly one log entry is appended per
// call.
func (t *Truck) Step(tick int, world World) error {
	if err := t.Validate(); err != nil {
		return err
	}

	switch {
	case t.status == EnRoute:
		return t.arrive(tick, world)
	case t.status == IdleAtCustomer:
		return t.unloadHere(tick, world)
	case t.status == FinishedUnloading:
		return t.departNext(tick)
	case t.status == IdleAtDepot && len(t.route) == 0:
		// No transition: waiting in place still leaves a log entry.
		t.record(tick, "idle at depot, no route assigned")
		return nil
	case t.status == IdleAtDepot:
		return t.transition(tick, PendingRoute, "route accepted, waiting to load")
	case t.status == PendingRoute:
		return t.loadHere(tick, world)
	case t.status == LoadingAtDepot:
		return t.transition(tick, PendingDeparture, "loaded, preparing to depart")
	case t.status == PendingDeparture:
		return t.departNext(tick)
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("truck %s cannot step from status %s", t.name, t.status))
	}
}

// arrive resolves the movement that began last tick. The truck's location
// already points at the destination; only the status changes, based on the
// kind of location reached. Reaching the depot ends the route cycle.
func (t *Truck) arrive(tick int, world World) error {
	loc, err := world.Location(t.locationName)
	if err != nil {
		return err
	}

	if loc.Kind() == location.Depot {
		t.depotName = ""
		return t.transition(tick, IdleAtDepot, fmt.Sprintf("arrived back at %s", t.locationName))
	}
	return t.transition(tick, IdleAtCustomer, fmt.Sprintf("arrived at %s", t.locationName))
}

// unloadHere serves the customer the truck is parked at. The truck offers
// its full cargo; the customer applies what its outstanding demand can
// absorb and the remainder stays aboard for the next stop (or rides back
// to the depot after the last one).
func (t *Truck) unloadHere(tick int, world World) error {
	if t.cargo == 0 {
		return t.transition(tick, FinishedUnloading, "arrived empty, nothing to unload")
	}

	loc, err := world.Location(t.locationName)
	if err != nil {
		return err
	}

	applied, err := loc.Unload(tick, t.cargo)
	if err != nil {
		return err
	}
	t.cargo -= applied

	comment := fmt.Sprintf("unloaded %d units", applied)
	if t.cargo > 0 {
		comment = fmt.Sprintf("unloaded %d units, kept %d aboard", applied, t.cargo)
	}
	return t.transition(tick, FinishedUnloading, comment)
}

// departNext starts the next leg: the head of the route if stops remain,
// otherwise the return leg to the assigned depot. Movement is
// instantaneous: the location is updated now and the arrival is observed
// next tick.
func (t *Truck) departNext(tick int) error {
	if len(t.route) > 0 {
		stop := t.route[0]
		t.route = t.route[1:]
		t.locationName = stop.LocationName
		return t.transition(tick, EnRoute, fmt.Sprintf("departed for %s", stop.LocationName))
	}

	t.locationName = t.depotName
	return t.transition(tick, EnRoute, fmt.Sprintf("all stops served, returning to %s", t.depotName))
}

// loadHere takes cargo aboard at the depot. The truck requests the sum of
// its route's planned quantities; a request beyond the free hold space is
// not an error but is clamped and the clamp logged, and the depot clamps
// further to its available stock.
func (t *Truck) loadHere(tick int, world World) error {
	requested := 0
	for _, stop := range t.route {
		requested += stop.Quantity
	}

	free := t.cargoCapacity - t.cargo
	clamped := false
	if requested > free {
		requested = free
		clamped = true
	}

	if requested == 0 {
		return t.transition(tick, LoadingAtDepot, "cargo hold full, nothing loaded")
	}

	loc, err := world.Location(t.locationName)
	if err != nil {
		return err
	}

	loaded, err := loc.Load(tick, requested)
	if err != nil {
		return err
	}
	t.cargo += loaded

	comment := fmt.Sprintf("loaded %d units", loaded)
	if clamped {
		comment += fmt.Sprintf(", request clamped to capacity %d", t.cargoCapacity)
	}
	if loaded < requested {
		comment += fmt.Sprintf(", depot stock covered only %d of %d", loaded, requested)
	}
	return t.transition(tick, LoadingAtDepot, comment)
}

// transition validates and applies a status change, then records it.
// Every mutation of status goes through here so an illegal jump can never
// be silently logged.
func (t *Truck) transition(tick int, next Status, comment string) error {
	if err := t.status.ValidateTransition(next); err != nil {
		return err
	}

	t.status = next
	t.record(tick, comment)
	return nil
}

// record appends a log entry capturing the truck's observable state after
// this tick. Log entries are never removed.
func (t *Truck) record(tick int, comment string) {
	t.events = append(t.events, LogEntry{
		Tick:     tick,
		Status:   t.status,
		Location: t.locationName,
		Cargo:    t.cargo,
		Comment:  comment,
	})
}

// Validate checks if the Truck was properly constructed via NewTruck.
// The zero value is invalid.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// ID returns the unique identifier of the truck.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// Name returns the stable identifier of the truck.
func (t *Truck) Name() string {
	return t.name
}

// Cargo returns the number of units currently aboard.
func (t *Truck) Cargo() int {
	return t.cargo
}

// CargoCapacity returns the maximum number of units the truck can carry.
func (t *Truck) CargoCapacity() int {
	return t.cargoCapacity
}

// FreeCapacity returns the hold space still available.
func (t *Truck) FreeCapacity() int {
	return t.cargoCapacity - t.cargo
}

// Status returns the current state-machine state.
func (t *Truck) Status() Status {
	return t.status
}

// LocationName returns the name of the location the truck is at. While
// EnRoute this is the destination the truck will arrive at next tick.
func (t *Truck) LocationName() string {
	return t.locationName
}

// HomeDepot returns the depot of the active route, or "" when idle.
func (t *Truck) HomeDepot() string {
	return t.depotName
}

// HasRoute reports whether the truck has remaining route stops.
func (t *Truck) HasRoute() bool {
	return len(t.route) > 0
}

// Route returns a copy of the remaining route stops in visit order.
func (t *Truck) Route() []RouteStop {
	out := make([]RouteStop, len(t.route))
	copy(out, t.route)
	return out
}

// Events returns a copy of the truck's event log in append order.
func (t *Truck) Events() []LogEntry {
	out := make([]LogEntry, len(t.events))
	copy(out, t.events)
	return out
}

// setID sets the truck's unique identifier with validation.
// This is an internal setter used during construction.
func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

// setName sets the truck's name with validation.
// This is an internal setter used during construction.
func (t *Truck) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	t.name = name
	return nil
}

// setCargoCapacity sets the truck's cargo capacity with validation.
// This is an internal setter used during construction.
func (t *Truck) setCargoCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCargoCapacityIsRequired
	}

	t.cargoCapacity = capacity
	return nil
}

// setStartDepot sets the truck's starting location with validation.
// This is an internal setter used during construction.
func (t *Truck) setStartDepot(depot string) error {
	if depot == "" {
		return ErrStartDepotIsRequired
	}

	t.locationName = depot
	return nil
}
