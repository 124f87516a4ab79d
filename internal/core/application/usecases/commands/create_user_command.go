package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new account.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	username      string
	fullName      string
	role          user.Role
	password      string
	actorUsername string
	actorRole     user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new account.
// Password strength is validated by the domain model when the account is built.
func NewCreateUserCommand(
	userID kernel.UUID,
	username string,
	fullName string,
	role user.Role,
	password string,
	actorUsername string,
	actorRole user.Role,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		fullName: fullName,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setRole(role),
		cmd.setActor(actorUsername, actorRole),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier the new account will carry.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested login name.
func (c CreateUserCommand) Username() string {
	return c.username
}

// FullName returns the requested display name.
func (c CreateUserCommand) FullName() string {
	return c.fullName
}

// Role returns the role the new account will carry.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

// Password returns the clear-text password to hash.
func (c CreateUserCommand) Password() string {
	return c.password
}

// ActorUsername returns the username of the requesting user.
func (c CreateUserCommand) ActorUsername() string {
	return c.actorUsername
}

// ActorRole returns the role of the requesting user.
func (c CreateUserCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateUserCommand) setActor(actorUsername string, actorRole user.Role) error {
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
