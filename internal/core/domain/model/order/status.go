package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as a whole.
//
// Orders start Pending, become In Progress while production stages are being
// worked, and end Completed once every stage is done. The order status is
// derived from the stage set (see Order.RefreshStatus); the stage progression
// rule itself never touches it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed and no
	// production work has started.
	Pending

	// InProgress indicates that at least one production stage has been
	// started but not all stages are finished.
	InProgress

	// Completed indicates all production stages are finished.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "In Progress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "In Progress",
		Completed:  "Completed",
	}
}

// StatusFromString parses an order status from its display name.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized order status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, In Progress, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
