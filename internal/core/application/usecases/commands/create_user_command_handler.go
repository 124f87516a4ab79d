package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
)

// CreateUserCommandHandler handles account registration. Admin only.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewCreateUserCommandHandler creates a handler for account registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the registration command.
// The repository rejects a username that is already taken.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.ActorRole(), services.OpManageUsers); err != nil {
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.FullName(), cmd.Role(), cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
