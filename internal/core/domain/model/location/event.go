package location

// Event is one entry in a location's append-only log: what happened and on
// which tick. Events are recorded in the order they occur and are never
// truncated or rewritten during a run.
type Event struct {
	Tick        int
	Description string
}
