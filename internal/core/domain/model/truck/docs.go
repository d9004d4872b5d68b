// Package truck implements the mobile agent of the simulation: a truck
// that cycles through loading at a depot, driving a route of customer
// stops, unloading, and returning home.
//
// The per-tick behavior is a seven-state machine (see Status). Exactly one
// transition rule fires per tick, evaluated in a fixed priority order, and
// every evaluation appends one entry to the truck's event log, including
// the no-op wait of an idle truck with no route. Movement has no
// geometry: departing sets the truck's location to the destination and the
// arrival is observed on the following tick.
//
// Trucks reach the rest of the world only through the narrow World
// interface, so the package has no dependency on the orchestrator.
package truck
