package commands

import (
	"context"

	"orderdesk/internal/core/domain/services"
)

// ChangeUserPasswordCommandHandler handles password replacement. Admin only.
type ChangeUserPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewChangeUserPasswordCommandHandler creates a handler for password changes.
func NewChangeUserPasswordCommandHandler(uowFactory UserUoWFactory) ChangeUserPasswordCommandHandler {
	return ChangeUserPasswordCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the password change.
func (h *ChangeUserPasswordCommandHandler) Handle(ctx context.Context, cmd ChangeUserPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.ActorRole(), services.OpManageUsers); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPassword(cmd.NewPassword()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
