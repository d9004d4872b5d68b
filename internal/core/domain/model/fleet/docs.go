// Package fleet implements the simulation orchestrator: the aggregate
// that owns every location and truck, the authoritative tick counter, and
// the single seeded random source.
//
// Each tick runs four phases in a fixed order (depot production, truck
// stepping, customer demand generation, route assignment) and every
// collection is traversed in stable name order. The ordering is a design
// contract: production lands before trucks load in the same tick, demand
// generated this tick is invisible to a truck unloading this tick, and
// route assignment sees the freshest demand. Together with the explicit
// random source this makes two runs with the same configuration and seed
// produce byte-identical event logs.
package fleet
