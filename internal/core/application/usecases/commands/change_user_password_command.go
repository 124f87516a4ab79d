package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrChangeUserPasswordCommandIsNotConstructed = errors.New(
	"ChangeUserPasswordCommand must be created via NewChangeUserPasswordCommand constructor",
)

// ChangeUserPasswordCommand represents a request to replace an account's
// password credential.
type ChangeUserPasswordCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	newPassword   string
	actorUsername string
	actorRole     user.Role

	guard guard.ConstructorGuard
}

// NewChangeUserPasswordCommand creates a command to replace a password.
// Password strength is validated by the domain model.
func NewChangeUserPasswordCommand(userID kernel.UUID, newPassword string, actorUsername string, actorRole user.Role) (ChangeUserPasswordCommand, error) {
	cmd := ChangeUserPasswordCommand{
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setActor(actorUsername, actorRole),
	); err != nil {
		return ChangeUserPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUserPasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserPasswordCommandIsNotConstructed)
}

// UserID returns the identifier of the account to change.
func (c ChangeUserPasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// NewPassword returns the clear-text replacement password.
func (c ChangeUserPasswordCommand) NewPassword() string {
	return c.newPassword
}

// ActorUsername returns the username of the requesting user.
func (c ChangeUserPasswordCommand) ActorUsername() string {
	return c.actorUsername
}

// ActorRole returns the role of the requesting user.
func (c ChangeUserPasswordCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *ChangeUserPasswordCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ChangeUserPasswordCommand) setActor(actorUsername string, actorRole user.Role) error {
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
