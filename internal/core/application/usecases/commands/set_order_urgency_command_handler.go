package commands

import (
	"context"

	"orderdesk/internal/core/domain/services"
)

// SetOrderUrgencyCommandHandler handles urgency changes on orders.
// Subject to the same ownership rule as edits: Sales users may flag only
// orders they created, Admin may flag any.
type SetOrderUrgencyCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewSetOrderUrgencyCommandHandler creates a handler for urgency changes.
func NewSetOrderUrgencyCommandHandler(uowFactory OrderUoWFactory) SetOrderUrgencyCommandHandler {
	return SetOrderUrgencyCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the urgency change.
// Fails with an InvalidStateTransitionError once any line of the order has
// been dispatched.
func (h *SetOrderUrgencyCommandHandler) Handle(ctx context.Context, cmd SetOrderUrgencyCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeOwned(cmd.ActorRole(), services.OpSetUrgency, cmd.ActorUsername(), aggregate.CreatedBy()); err != nil {
		return err
	}

	if err = aggregate.SetUrgent(cmd.Urgent()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
