package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrSetOrderUrgencyCommandIsNotConstructed = errors.New(
	"SetOrderUrgencyCommand must be created via NewSetOrderUrgencyCommand constructor",
)

// SetOrderUrgencyCommand represents a request to change the urgency flag of
// an order. Urgency can only change while every line is still Pending.
type SetOrderUrgencyCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	urgent        bool
	actorUsername string
	actorRole     user.Role

	guard guard.ConstructorGuard
}

// NewSetOrderUrgencyCommand creates a command to change order urgency.
func NewSetOrderUrgencyCommand(orderID kernel.UUID, urgent bool, actorUsername string, actorRole user.Role) (SetOrderUrgencyCommand, error) {
	cmd := SetOrderUrgencyCommand{
		urgent: urgent,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorUsername, actorRole),
	); err != nil {
		return SetOrderUrgencyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderUrgencyCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderUrgencyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to flag.
func (c SetOrderUrgencyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Urgent returns the requested urgency value.
func (c SetOrderUrgencyCommand) Urgent() bool {
	return c.urgent
}

// ActorUsername returns the username of the requesting user.
func (c SetOrderUrgencyCommand) ActorUsername() string {
	return c.actorUsername
}

// ActorRole returns the role of the requesting user.
func (c SetOrderUrgencyCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *SetOrderUrgencyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderUrgencyCommand) setActor(actorUsername string, actorRole user.Role) error {
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
