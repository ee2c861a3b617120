package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// StageStatus represents the lifecycle state of one order stage.
//
// Unlike most state machines in this codebase, stage status transitions are
// deliberately unrestricted: the workshop corrects mistakes by moving a stage
// back and forth, so any recognized status may be applied to a stage directly.
// Only the cascade triggered by completion is guarded: activation promotes
// Pending stages exclusively.
type StageStatus int

const (
	// StageUnknown represents an invalid or undefined stage status.
	StageUnknown StageStatus = iota

	// StagePending is the initial status of an appended stage: the work has
	// not started and the stage is waiting for its predecessor to complete.
	StagePending

	// StageInProgress indicates the stage is actively being worked.
	StageInProgress

	// StageCompleted indicates the work of this stage is finished.
	// A completed stage carries an end date.
	StageCompleted
)

func getStageStatusStrings() map[StageStatus]string {
	return map[StageStatus]string{
		StageUnknown:    "Unknown",
		StagePending:    "Pending",
		StageInProgress: "In Progress",
		StageCompleted:  "Completed",
	}
}

func getValidStageStatusStrings() map[StageStatus]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[StageStatus]string{
		StagePending:    "Pending",
		StageInProgress: "In Progress",
		StageCompleted:  "Completed",
	}
}

// StageStatusFromString parses a stage status from its display name.
// Returns an error for unrecognized names; an unrecognized submitted status
// is a reported validation failure, never silently dropped.
func StageStatusFromString(s string) (StageStatus, error) {
	for status, name := range getValidStageStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized stage status", s),
	)
}

// Validate checks if the StageStatus value is valid.
// Valid statuses are: Pending, In Progress, Completed.
func (s StageStatus) Validate() error {
	if _, ok := getValidStageStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid stage status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the stage status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s StageStatus) String() string {
	if str, ok := getStageStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
