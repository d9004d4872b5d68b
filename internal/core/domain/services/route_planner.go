package services

import (
	"sort"

	"fleetsim/internal/core/domain/model/location"
	"fleetsim/internal/core/domain/model/truck"
	"fleetsim/internal/pkg/errs"
)

// RoutePlanner is a domain service that builds delivery routes for idle
// trucks at a depot.
//
// Selection algorithm (greedy, deterministic):
//   - Customers are considered in descending outstanding demand, ties
//     broken by name ascending
//   - Only customers with active demand become stops
//   - Each stop is planned for min(customer demand, remaining budget),
//     where the budget is min(truck free capacity, depot stock); whichever
//     binds first ends the route
//
// An empty plan is a valid outcome (no demand, or no stock to back it);
// the caller simply assigns nothing that tick.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan builds a route departing from the given depot serving the given
// customers, limited by the truck's free capacity.
//
// Parameters:
//   - depot: the depot the truck will load at (must be a depot)
//   - customers: candidate customer locations (each must be a customer)
//   - freeCapacity: hold space available on the truck
//
// Returns the planned stops in visit order; nil when nothing can be
// usefully planned.
func (p RoutePlanner) Plan(
	depot *location.Location,
	customers []*location.Location,
	freeCapacity int,
) ([]truck.RouteStop, error) {
	if err := depot.Validate(); err != nil {
		return nil, err
	}
	if depot.Kind() != location.Depot {
		return nil, location.ErrNotADepot
	}

	budget := min(freeCapacity, depot.Stock())
	if budget <= 0 {
		return nil, nil
	}

	candidates := make([]*location.Location, 0, len(customers))
	for _, c := range customers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.Kind() != location.Customer {
			return nil, location.ErrNotACustomer
		}
		if c.Demand() > 0 {
			candidates = append(candidates, c)
		}
	}

	// Largest outstanding demand first; name order makes ties deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Demand() != candidates[j].Demand() {
			return candidates[i].Demand() > candidates[j].Demand()
		}
		return candidates[i].Name() < candidates[j].Name()
	})

	var stops []truck.RouteStop
	for _, c := range candidates {
		quantity := min(c.Demand(), budget)
		stop, err := truck.NewRouteStop(c.Name(), quantity)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("route stop", err)
		}

		stops = append(stops, stop)
		budget -= quantity
		if budget == 0 {
			break
		}
	}

	return stops, nil
}
