package location

import (
	"fmt"

	"fleetsim/internal/pkg/errs"
)

// Kind discriminates the two roles a Location can play in the simulation.
// A location's kind is fixed at construction and determines which
// operations are valid on it.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Depot produces and stores resource stock; trucks load here.
	Depot

	// Customer accumulates demand; trucks unload here.
	Customer
)

// getKindStrings returns a map of Kind values to their string representations.
// All kinds are included for string conversion.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:  "Unknown",
		Depot:    "Depot",
		Customer: "Customer",
	}
}

// getValidKindStrings returns a map of only valid Kind values.
// Only valid kinds are included to support validation.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Depot:    "Depot",
		Customer: "Customer",
	}
}

// Validate checks if the Kind value is valid.
// Valid kinds are Depot and Customer; Unknown (0) and any other values
// are invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Returns "Unknown" for invalid kind values. Implements fmt.Stringer and
// is safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
