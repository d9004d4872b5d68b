// Package location implements the stock/demand ledger side of the
// simulation: depots that produce and store resource units, and customers
// that accumulate demand served by trucks.
//
// Location is a single aggregate with a Kind discriminator rather than two
// types; the kind-specific operations (Produce/Load on depots,
// GenerateDemand/Unload on customers) are enforced with typed errors so a
// wrong-kind call can never silently mutate state.
//
// Every state change appends to the location's in-memory event log, which
// is append-only for the life of a run and is the only artifact external
// collaborators consume besides snapshot accessors.
package location
