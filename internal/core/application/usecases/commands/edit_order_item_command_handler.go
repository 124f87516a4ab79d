package commands

import (
	"context"

	"orderdesk/internal/core/domain/services"
)

// EditOrderItemCommandHandler handles edits to pending order lines.
// Sales users may edit only lines of orders they created; Admin may edit
// any line. Dispatched lines are immutable.
type EditOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewEditOrderItemCommandHandler creates a handler for order line edits.
func NewEditOrderItemCommandHandler(uowFactory OrderUoWFactory) EditOrderItemCommandHandler {
	return EditOrderItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the edit command.
// Loads the owning order, checks role and ownership, applies the edit
// through the aggregate, and persists the changed order.
func (h *EditOrderItemCommandHandler) Handle(ctx context.Context, cmd EditOrderItemCommand) error {
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
	aggregate, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeOwned(cmd.ActorRole(), services.OpEditOrder, cmd.ActorUsername(), aggregate.CreatedBy()); err != nil {
		return err
	}

	if err = aggregate.EditItem(cmd.ItemID(), cmd.ProductName(), cmd.Qty(), cmd.Unit(), cmd.UnitPrice()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
