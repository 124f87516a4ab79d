package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove an account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	actorUsername string
	actorRole     user.Role

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to remove an account.
func NewDeleteUserCommand(userID kernel.UUID, actorUsername string, actorRole user.Role) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setActor(actorUsername, actorRole),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the identifier of the account to remove.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

// ActorUsername returns the username of the requesting user.
func (c DeleteUserCommand) ActorUsername() string {
	return c.actorUsername
}

// ActorRole returns the role of the requesting user.
func (c DeleteUserCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *DeleteUserCommand) setActor(actorUsername string, actorRole user.Role) error {
	if actorUsername == "" {
		return ErrActorIsRequired
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorUsername = actorUsername
	c.actorRole = actorRole
	return nil
}
