package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrEditOrderItemCommandIsNotConstructed = errors.New(
	"EditOrderItemCommand must be created via NewEditOrderItemCommand constructor",
)

// EditOrderItemCommand represents a request to overwrite the mutable fields
// of one pending order line.
type EditOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	productName   string
	qty           int
	unit          string
	unitPrice     float64
	actorUsername string
	actorRole     user.Role

	guard guard.ConstructorGuard
}

// NewEditOrderItemCommand creates a command to edit one order line.
// Field semantics (positive quantity, non-negative price) are validated by
// the domain model when the edit is applied.
func NewEditOrderItemCommand(
	itemID kernel.UUID,
	productName string,
	qty int,
	unit string,
	unitPrice float64,
	actorUsername string,
	actorRole user.Role,
) (EditOrderItemCommand, error) {
	cmd := EditOrderItemCommand{
		productName: productName,
		qty:         qty,
		unit:        unit,
		unitPrice:   unitPrice,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActor(actorUsername, actorRole),
	); err != nil {
		return EditOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the line to edit.
func (c EditOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductName returns the new product name.
func (c EditOrderItemCommand) ProductName() string {
	return c.productName
}

// Qty returns the new ordered quantity.
func (c EditOrderItemCommand) Qty() int {
	return c.qty
}

// Unit returns the new unit of measure.
func (c EditOrderItemCommand) Unit() string {
	return c.unit
}

// UnitPrice returns the new unit price.
func (c EditOrderItemCommand) UnitPrice() float64 {
	return c.unitPrice
}

// ActorUsername returns the username of the requesting user.
func (c EditOrderItemCommand) ActorUsername() string {
	return c.actorUsername
}

// ActorRole returns the role of the requesting user.
func (c EditOrderItemCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *EditOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *EditOrderItemCommand) setActor(actorUsername string, actorRole user.Role) error {
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
