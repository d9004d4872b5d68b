package location

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

// Domain errors for location operations.
var (
	// ErrNameIsRequired is returned when attempting to create a location without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLocationIsNotConstructed is returned when using an improperly initialized Location.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewDepot or NewCustomer constructor")
	// ErrNotADepot is returned when a depot-only operation is invoked on a customer.
	ErrNotADepot = errors.New("operation is only valid for a depot")
	// ErrNotACustomer is returned when a customer-only operation is invoked on a depot.
	ErrNotACustomer = errors.New("operation is only valid for a customer")
	// ErrInvalidQuantity is returned when a caller requests loading or unloading
	// a non-positive amount. This is a precondition violation by the caller,
	// never a runtime shortage: shortages are resolved by clamping, not errors.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Location represents a site in the simulated world: either a depot that
// produces and stores resource stock, or a customer that accumulates
// demand. It is an aggregate root owning its quantity state and its
// append-only event log.
//
// Key responsibilities:
//   - Enforcing the stock invariant for depots (0 ≤ stock ≤ capacity)
//   - Enforcing the demand invariant for customers (demand ≥ 0)
//   - Recording every state change in the event log with its tick
//   - Tracking cumulative produced/delivered totals for conservation checks
//
// Business rules:
//   - Kind is fixed at construction; depot operations fail on customers
//     and vice versa
//   - Quantities are always integers; shortages clamp, they never error
//   - A non-positive requested amount is a caller error (ErrInvalidQuantity)
type Location struct {
	// id uniquely identifies the location for the run
	id kernel.UUID
	// name is the stable, human-readable identifier (e.g. "Depot-A");
	// all logs and traversal ordering use it
	name string
	// kind discriminates depot from customer
	kind Kind
	// stock is the resource quantity held (depot only)
	stock int
	// capacity is the maximum stock the depot may hold
	capacity int
	// productionRate is the number of units added per tick, subject to capacity
	productionRate int
	// produced is the cumulative number of units ever produced
	produced int
	// demand is the outstanding quantity wanted (customer only)
	demand int
	// delivered is the cumulative quantity applied against demand
	delivered int
	// events is the append-only log of everything that happened here
	events []Event
	// guard ensures the location was properly constructed
	guard guard.ConstructorGuard
}

// NewDepot creates a depot location.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: stable human-readable name (must be non-empty)
//   - capacity: maximum stock (must be positive)
//   - productionRate: units produced per tick (must be non-negative)
//   - initialStock: starting stock (must be within [0, capacity])
//
// Returns the depot ready for Produce/Load operations, or an aggregated
// validation error.
func NewDepot(id kernel.UUID, name string, capacity, productionRate, initialStock int) (*Location, error) {
	loc := &Location{
		kind:  Depot,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setCapacity(capacity),
		loc.setProductionRate(productionRate),
	); err != nil {
		return nil, err
	}

	if initialStock < 0 || initialStock > capacity {
		return nil, errs.NewValueIsOutOfRangeError("initial stock", initialStock, 0, capacity)
	}
	loc.stock = initialStock

	loc.record(0, fmt.Sprintf("depot created with stock %d/%d, producing %d per tick",
		loc.stock, loc.capacity, loc.productionRate))
	return loc, nil
}

// NewCustomer creates a customer location.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: stable human-readable name (must be non-empty)
//   - initialDemand: starting outstanding demand (must be non-negative)
//
// Returns the customer ready for GenerateDemand/Unload operations, or an
// aggregated validation error.
func NewCustomer(id kernel.UUID, name string, initialDemand int) (*Location, error) {
	loc := &Location{
		kind:  Customer,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
	); err != nil {
		return nil, err
	}

	if initialDemand < 0 {
		return nil, errs.NewValueIsOutOfRangeError("initial demand", initialDemand, 0, "unbounded")
	}
	loc.demand = initialDemand

	loc.record(0, fmt.Sprintf("customer created with outstanding demand %d", loc.demand))
	return loc, nil
}

// Produce adds one tick's production to the depot's stock, clamped to
// capacity. An event is logged only when the stock actually changed, so a
// full depot leaves no trace of the no-op.
//
// Returns ErrNotADepot when called on a customer.
func (l *Location) Produce(tick int) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.kind != Depot {
		return ErrNotADepot
	}

	before := l.stock
	l.stock = min(l.capacity, l.stock+l.productionRate)
	added := l.stock - before
	if added == 0 {
		return nil
	}

	l.produced += added
	l.record(tick, fmt.Sprintf("produced %d units, stock now %d/%d", added, l.stock, l.capacity))
	return nil
}

// GenerateDemand rolls the per-tick probability gate and, when it passes,
// adds a demand amount drawn uniformly from [minAmount, maxAmount] to the
// customer's outstanding demand. A failed gate is a silent no-op.
//
// The generator is passed explicitly so the whole run stays deterministic
// for a given seed: the gate consumes exactly one draw per call, and the
// amount a second draw only when the gate passes.
//
// Returns ErrNotACustomer when called on a depot, and a validation error
// for a malformed probability or amount range.
func (l *Location) GenerateDemand(tick int, rng *rand.Rand, probability float64, minAmount, maxAmount int) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.kind != Customer {
		return ErrNotACustomer
	}
	if probability < 0 || probability > 1 {
		return errs.NewValueIsOutOfRangeError("probability", probability, 0, 1)
	}
	if minAmount <= 0 || maxAmount < minAmount {
		return errs.NewValueIsOutOfRangeError("amount range", minAmount, 1, maxAmount)
	}

	if rng.Float64() >= probability {
		return nil
	}

	amount := minAmount + rng.IntN(maxAmount-minAmount+1)
	l.demand += amount
	l.record(tick, fmt.Sprintf("new demand for %d units, outstanding now %d", amount, l.demand))
	return nil
}

// Load removes up to requested units from the depot's stock and returns
// the amount actually removed. A shortage is not an error: the load is
// clamped to the available stock and the clamp is visible in the returned
// amount and the log entry.
//
// Returns ErrInvalidQuantity for a non-positive request and ErrNotADepot
// when called on a customer.
func (l *Location) Load(tick int, requested int) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if l.kind != Depot {
		return 0, ErrNotADepot
	}
	if requested <= 0 {
		return 0, ErrInvalidQuantity
	}

	loaded := min(requested, l.stock)
	l.stock -= loaded
	if loaded < requested {
		l.record(tick, fmt.Sprintf("loaded %d of %d requested units, stock exhausted at %d", loaded, requested, l.stock))
	} else {
		l.record(tick, fmt.Sprintf("loaded %d units, stock now %d/%d", loaded, l.stock, l.capacity))
	}
	return loaded, nil
}

// Unload applies up to amount units against the customer's outstanding
// demand and returns the amount actually applied. Any excess beyond the
// outstanding demand is left with the caller; the customer never holds
// stock.
//
// Returns ErrInvalidQuantity for a non-positive amount and ErrNotACustomer
// when called on a depot.
func (l *Location) Unload(tick int, amount int) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if l.kind != Customer {
		return 0, ErrNotACustomer
	}
	if amount <= 0 {
		return 0, ErrInvalidQuantity
	}

	applied := min(amount, l.demand)
	l.demand -= applied
	l.delivered += applied
	l.record(tick, fmt.Sprintf("received %d units, outstanding now %d", applied, l.demand))
	return applied, nil
}

// Validate checks if the Location was properly constructed via NewDepot or
// NewCustomer. The zero value is invalid.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// ID returns the unique identifier of the location.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the stable human-readable name of the location.
func (l *Location) Name() string {
	return l.name
}

// Kind returns whether the location is a Depot or a Customer.
func (l *Location) Kind() Kind {
	return l.kind
}

// Stock returns the depot's current stock. Always zero for customers.
func (l *Location) Stock() int {
	return l.stock
}

// Capacity returns the depot's maximum stock. Always zero for customers.
func (l *Location) Capacity() int {
	return l.capacity
}

// ProductionRate returns the depot's per-tick production rate.
func (l *Location) ProductionRate() int {
	return l.productionRate
}

// Produced returns the cumulative number of units this depot has produced.
// Together with Delivered it supports conservation accounting: units enter
// the system only through production and leave it only by being applied
// against demand.
func (l *Location) Produced() int {
	return l.produced
}

// Demand returns the customer's outstanding demand. Always zero for depots.
func (l *Location) Demand() int {
	return l.demand
}

// Delivered returns the cumulative quantity ever applied against this
// customer's demand.
func (l *Location) Delivered() int {
	return l.delivered
}

// Events returns a copy of the location's event log in append order.
func (l *Location) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// record appends an event to the log. Log entries are never removed.
func (l *Location) record(tick int, description string) {
	l.events = append(l.events, Event{Tick: tick, Description: description})
}

// setID sets the location's unique identifier with validation.
// This is an internal setter used during construction.
func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.id = id
	return nil
}

// setName sets the location's name with validation.
// This is an internal setter used during construction.
func (l *Location) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	l.name = name
	return nil
}

// setCapacity sets the depot's capacity with validation.
// This is an internal setter used during construction.
func (l *Location) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsRequiredError("capacity")
	}

	l.capacity = capacity
	return nil
}

// setProductionRate sets the depot's production rate with validation.
// This is an internal setter used during construction.
func (l *Location) setProductionRate(rate int) error {
	if rate < 0 {
		return errs.NewValueIsOutOfRangeError("production rate", rate, 0, "unbounded")
	}

	l.productionRate = rate
	return nil
}
