package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/services"
)

// ErrCannotDeleteOwnAccount is returned when an admin tries to remove the
// account they are logged in with.
var ErrCannotDeleteOwnAccount = errors.New("cannot delete own account")

// DeleteUserCommandHandler handles account removal. Admin only.
// An admin cannot remove their own account, so the system always keeps at
// least the acting admin.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteUserCommandHandler creates a handler for account removal.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the removal command.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	if aggregate.Username() == cmd.ActorUsername() {
		return ErrCannotDeleteOwnAccount
	}

	if err = userRepo.Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
