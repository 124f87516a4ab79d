package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrActorIsRequired = errs.NewValueIsRequiredError("actor")
)

// OrderLine is one requested product line inside a CreateOrderCommand.
// Line-level validation (positive quantity, non-empty product name) is
// performed by the domain model when the order is built.
type OrderLine struct {
	ItemID      kernel.UUID
	ProductName string
	Qty         int
	Unit        string
	UnitPrice   float64
}

// CreateOrderCommand represents a request to register a new customer order
// with one or more product lines.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	urgent        bool
	currency      string
	address       string
	taxID         string
	lines         []OrderLine
	actorUsername string
	actorRole     user.Role

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identity and shape; the domain model validates field semantics.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	urgent bool,
	currency string,
	address string,
	taxID string,
	lines []OrderLine,
	actorUsername string,
	actorRole user.Role,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		urgent:       urgent,
		currency:     currency,
		address:      address,
		taxID:        taxID,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLines(lines),
		cmd.setActor(actorUsername, actorRole),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the ordering customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Urgent returns the requested urgency flag.
func (c CreateOrderCommand) Urgent() bool {
	return c.urgent
}

// Currency returns the requested currency code.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// TaxID returns the customer tax identifier.
func (c CreateOrderCommand) TaxID() string {
	return c.taxID
}

// Lines returns the requested product lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ActorUsername returns the username of the requesting user.
func (c CreateOrderCommand) ActorUsername() string {
	return c.actorUsername
}

// ActorRole returns the role of the requesting user.
func (c CreateOrderCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setActor(actorUsername string, actorRole user.Role) error {
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
