package commands

import (
	"context"
	"time"
)

// RefreshOrderStatusesCommandHandler sweeps all uncompleted orders and
// persists the ones whose derived status changed. The whole sweep runs in a
// single transaction.
type RefreshOrderStatusesCommandHandler struct {
	uowFactory OrderSweepUoWFactory
}

// NewRefreshOrderStatusesCommandHandler creates a handler for the status sweep.
// Requires an OrderSweepUoWFactory for transactional order access.
func NewRefreshOrderStatusesCommandHandler(uowFactory OrderSweepUoWFactory) RefreshOrderStatusesCommandHandler {
	return RefreshOrderStatusesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status sweep command. Orders already reflecting their
// stage set are left untouched.
func (h RefreshOrderStatusesCommandHandler) Handle(ctx context.Context, cmd RefreshOrderStatusesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregates, err := orderRepo.GetAllUncompleted(ctx)
	if err != nil {
		return err
	}

	today := time.Now()
	for _, aggregate := range aggregates {
		if !aggregate.RefreshStatus(today) {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
