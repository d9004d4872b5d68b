// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the simulation. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - RoutePlanner: A domain service that builds greedy demand-first
//     delivery routes bounded by truck capacity and depot stock
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven
// Design principles.
package services
