package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/services"
)

// DispatchOrderItemCommandHandler handles the fulfilment of order lines.
// Only Dispatch and Admin may dispatch. The write path is guarded against
// concurrent dispatchers: the repository records the dispatch only while the
// stored line is still Pending, so exactly one of two racing dispatchers
// succeeds and the loser gets an InvalidStateTransitionError.
type DispatchOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewDispatchOrderItemCommandHandler creates a handler for line dispatch.
func NewDispatchOrderItemCommandHandler(uowFactory OrderUoWFactory) DispatchOrderItemCommandHandler {
	return DispatchOrderItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the dispatch command.
// Applies the transition on the aggregate first so every domain rule runs
// (status, quantity bound, actor), then persists through the conditional
// repository write.
func (h *DispatchOrderItemCommandHandler) Handle(ctx context.Context, cmd DispatchOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.ActorRole(), services.OpDispatchOrder); err != nil {
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
	aggregate, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.DispatchItem(cmd.ItemID(), cmd.Qty(), cmd.ActorUsername(), now); err != nil {
		return err
	}

	if err = orderRepo.UpdateItemDispatch(ctx, cmd.ItemID(), cmd.Qty(), cmd.ActorUsername(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
