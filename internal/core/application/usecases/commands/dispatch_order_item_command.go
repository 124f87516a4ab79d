package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrDispatchOrderItemCommandIsNotConstructed = errors.New(
	"DispatchOrderItemCommand must be created via NewDispatchOrderItemCommand constructor",
)

// DispatchOrderItemCommand represents a request to fulfil one pending order
// line with a given quantity. Dispatch is one-shot: partial fulfilment still
// moves the line to its terminal Dispatched state.
type DispatchOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	qty           int
	actorUsername string
	actorRole     user.Role

	guard guard.ConstructorGuard
}

// NewDispatchOrderItemCommand creates a command to dispatch one order line.
// The quantity bound (0 < qty <= ordered quantity) is validated by the
// domain model against the stored line.
func NewDispatchOrderItemCommand(itemID kernel.UUID, qty int, actorUsername string, actorRole user.Role) (DispatchOrderItemCommand, error) {
	cmd := DispatchOrderItemCommand{
		qty:   qty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActor(actorUsername, actorRole),
	); err != nil {
		return DispatchOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the line to dispatch.
func (c DispatchOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Qty returns the quantity to dispatch.
func (c DispatchOrderItemCommand) Qty() int {
	return c.qty
}

// ActorUsername returns the username of the dispatching user.
func (c DispatchOrderItemCommand) ActorUsername() string {
	return c.actorUsername
}

// ActorRole returns the role of the dispatching user.
func (c DispatchOrderItemCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *DispatchOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *DispatchOrderItemCommand) setActor(actorUsername string, actorRole user.Role) error {
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
