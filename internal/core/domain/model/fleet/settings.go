package fleet

import (
	"errors"

	"fleetsim/internal/pkg/errs"
)

// Documented defaults for the simulation parameters. They mirror the
// sample runs the simulator ships with: a small fleet serving a handful
// of customers, a 30% chance per tick that an idle truck is sent out.
const (
	DefaultTruckCount        = 3
	DefaultDepotCount        = 1
	DefaultCustomerCount     = 5
	DefaultTruckCapacity     = 200
	DefaultDepotCapacity     = 1000
	DefaultProductionRate    = 50
	DefaultInitialStock      = 0
	DefaultInitialDemandMin  = 0
	DefaultInitialDemandMax  = 100
	DefaultDemandMin         = 10
	DefaultDemandMax         = 100
	DefaultDemandProbability = 0.2
	DefaultRouteProbability  = 0.3
	DefaultSeed              = 1
)

// maxDepots bounds the depot count because depots are named Depot-A
// through Depot-Z.
const maxDepots = 26

// Settings carries every construction parameter of a simulation run.
// Settings are plain configuration, not CLI-bound; the cmd layer maps
// environment variables and flags onto them.
type Settings struct {
	// TruckCount is the number of trucks, named TRK-001 upward.
	TruckCount int
	// DepotCount is the number of depots, named Depot-A upward (max 26).
	DepotCount int
	// CustomerCount is the number of customers, named Customer-001 upward.
	CustomerCount int
	// TruckCapacity is the cargo capacity of every truck.
	TruckCapacity int
	// DepotCapacity is the maximum stock of every depot.
	DepotCapacity int
	// ProductionRate is the per-tick production of every depot.
	ProductionRate int
	// InitialStock is the stock every depot starts with.
	InitialStock int
	// InitialDemandMin/Max bound the demand every customer starts with,
	// drawn once at construction from the seeded source. Equal bounds make
	// the initial demand exact; zero bounds start customers empty.
	InitialDemandMin int
	InitialDemandMax int
	// DemandProbability is the per-customer per-tick chance of new demand.
	DemandProbability float64
	// DemandMin/Max bound each generated demand amount.
	DemandMin int
	DemandMax int
	// RouteProbability is the per-tick chance an idle truck is assigned a route.
	RouteProbability float64
	// Seed initializes the single pseudo-random source of the run.
	Seed uint64
}

// DefaultSettings returns the documented default parameters.
func DefaultSettings() Settings {
	return Settings{
		TruckCount:        DefaultTruckCount,
		DepotCount:        DefaultDepotCount,
		CustomerCount:     DefaultCustomerCount,
		TruckCapacity:     DefaultTruckCapacity,
		DepotCapacity:     DefaultDepotCapacity,
		ProductionRate:    DefaultProductionRate,
		InitialStock:      DefaultInitialStock,
		InitialDemandMin:  DefaultInitialDemandMin,
		InitialDemandMax:  DefaultInitialDemandMax,
		DemandProbability: DefaultDemandProbability,
		DemandMin:         DefaultDemandMin,
		DemandMax:         DefaultDemandMax,
		RouteProbability:  DefaultRouteProbability,
		Seed:              DefaultSeed,
	}
}

// Validate checks the settings for internal consistency. It aggregates
// every violation so a misconfiguration surfaces completely on the first
// attempt.
func (s Settings) Validate() error {
	var violations []error

	if s.TruckCount <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("truck count"))
	}
	if s.DepotCount <= 0 || s.DepotCount > maxDepots {
		violations = append(violations, errs.NewValueIsOutOfRangeError("depot count", s.DepotCount, 1, maxDepots))
	}
	if s.CustomerCount <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("customer count"))
	}
	if s.TruckCapacity <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("truck capacity"))
	}
	if s.DepotCapacity <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("depot capacity"))
	}
	if s.ProductionRate < 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("production rate", s.ProductionRate, 0, "unbounded"))
	}
	if s.InitialStock < 0 || s.InitialStock > s.DepotCapacity {
		violations = append(violations, errs.NewValueIsOutOfRangeError("initial stock", s.InitialStock, 0, s.DepotCapacity))
	}
	if s.InitialDemandMin < 0 || s.InitialDemandMax < s.InitialDemandMin {
		violations = append(violations, errs.NewValueIsOutOfRangeError(
			"initial demand range", s.InitialDemandMin, 0, s.InitialDemandMax))
	}
	if s.DemandProbability < 0 || s.DemandProbability > 1 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("demand probability", s.DemandProbability, 0, 1))
	}
	if s.DemandMin <= 0 || s.DemandMax < s.DemandMin {
		violations = append(violations, errs.NewValueIsOutOfRangeError("demand range", s.DemandMin, 1, s.DemandMax))
	}
	if s.RouteProbability < 0 || s.RouteProbability > 1 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("route probability", s.RouteProbability, 0, 1))
	}

	return errors.Join(violations...)
}
