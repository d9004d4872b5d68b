// Package kernel provides core domain primitives shared by the simulation
// domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// Identity is deliberately the only primitive here: the simulation has no
// geometry (moving between any two locations costs exactly one tick), so
// locations and trucks are referenced by stable names rather than
// coordinates. UUIDs identify aggregates for the lifetime of a run while
// the names drive the deterministic traversal order.
package kernel
