package commands

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrRefreshOrderStatusesCommandIsNotConstructed = errors.New(
	"RefreshOrderStatusesCommand must be created via NewRefreshOrderStatusesCommand constructor",
)

// RefreshOrderStatusesCommand triggers a sweep over all uncompleted orders,
// recomputing each order's status from its stage set. Orders whose stages are
// all completed get their completion date stamped.
//
// Example:
//
//	cmd := NewRefreshOrderStatusesCommand()
//	handler := NewRefreshOrderStatusesCommandHandler(uowFactory)
//
//	// Run periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Status sweep failed: %v", err)
//	}
type RefreshOrderStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshOrderStatusesCommand creates a command to trigger the status sweep.
// This is a parameterless command that processes all uncompleted orders.
func NewRefreshOrderStatusesCommand() RefreshOrderStatusesCommand {
	return RefreshOrderStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshOrderStatusesCommandIsNotConstructed if validation fails.
func (c RefreshOrderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrderStatusesCommandIsNotConstructed)
}
