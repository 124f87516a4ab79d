package order

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrCustomerNameIsRequired is returned when attempting to create an order
	// without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrCreatedByIsRequired is returned when attempting to create an order
	// without the creating user's username.
	ErrCreatedByIsRequired = errs.NewValueIsRequiredError("created by")
	// ErrCreatedAtIsRequired is returned when attempting to create an order
	// without a creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("created at")
	// ErrItemsAreRequired is returned when attempting to create an order
	// without any items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system.
// It is an aggregate root that manages the order header and its product lines.
// Orders are created by sales users, optionally flagged urgent, and fulfilled
// line by line by dispatch users.
//
// Key responsibilities:
//   - Managing order identity and header fields (customer, currency, address, tax ID)
//   - Managing the item collection and routing edits and dispatches to lines
//   - Enforcing the urgency rule (changeable only while every line is Pending)
//
// Business rules:
//   - Order must have a valid UUID, non-empty customer name, and a known creator
//   - Currency must be a three-letter uppercase ISO 4217 style code
//   - An order carries at least one item; lines are never added or removed after creation
//   - Urgency applies to the order as a whole, never per line
type Order struct {
	// id uniquely identifies the order
	id kernel.UUID
	// customerName is the ordering customer
	customerName string
	// createdBy is the username of the sales user who placed the order
	createdBy string
	// createdAt is the creation timestamp, the FIFO key of the dispatch queue
	createdAt time.Time
	// urgent marks the order for front-of-queue treatment
	urgent bool
	// currency is the three-letter code all line prices are quoted in
	currency string
	// address is the optional delivery address
	address string
	// taxID is the optional customer tax identifier
	taxID string
	// items are the product lines of the order
	items []*Item
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with the specified parameters.
// This is the only way to create a valid fresh Order instance.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerName: Ordering customer (must be non-empty)
//   - createdBy: Username of the creating sales user (must be non-empty)
//   - createdAt: Creation timestamp (must be non-zero)
//   - urgent: Whether the order jumps the dispatch queue
//   - currency: Three-letter uppercase currency code
//   - address: Delivery address (optional, may be empty)
//   - taxID: Customer tax identifier (optional, may be empty)
//   - items: Product lines (at least one, all valid)
//
// Returns the created order, or a validation error if any parameter is
// invalid (aggregated errors for multiple issues).
func NewOrder(
	id kernel.UUID,
	customerName string,
	createdBy string,
	createdAt time.Time,
	urgent bool,
	currency string,
	address string,
	taxID string,
	items []*Item,
) (*Order, error) {
	o := &Order{
		urgent:  urgent,
		address: address,
		taxID:   taxID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCreatedBy(createdBy),
		o.setCreatedAt(createdAt),
		o.setCurrency(currency),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// The restored order behaves identically to one created through normal
// domain operations, including lines that were already dispatched.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	createdBy string,
	createdAt time.Time,
	urgent bool,
	currency string,
	address string,
	taxID string,
	items []*Item,
) (*Order, error) {
	return NewOrder(id, customerName, createdBy, createdAt, urgent, currency, address, taxID, items)
}

// IsEqual compares two orders for equality based on their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	return o.id.IsEqual(other.id)
}

// Validate checks if the Order was properly constructed using the NewOrder
// constructor. The zero value of Order is invalid and will fail this validation.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the unique identifier of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the ordering customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CreatedBy returns the username of the sales user who placed the order.
func (o *Order) CreatedBy() string {
	return o.createdBy
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsUrgent reports whether the order is flagged for priority dispatch.
func (o *Order) IsUrgent() bool {
	return o.urgent
}

// Currency returns the three-letter currency code of the order.
func (o *Order) Currency() string {
	return o.currency
}

// Address returns the delivery address. May be empty.
func (o *Order) Address() string {
	return o.address
}

// TaxID returns the customer tax identifier. May be empty.
func (o *Order) TaxID() string {
	return o.taxID
}

// Items returns all product lines of the order.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Item returns the product line with the given identifier.
// Returns an ObjectNotFoundError if no such line exists on this order.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order item", itemID)
}

// IsFullyPending reports whether every line of the order is still Pending.
// Urgency can only change while this holds.
func (o *Order) IsFullyPending() bool {
	for _, item := range o.items {
		if item.Status() != Pending {
			return false
		}
	}
	return true
}

// IsFullyDispatched reports whether every line of the order has been fulfilled.
func (o *Order) IsFullyDispatched() bool {
	for _, item := range o.items {
		if !item.IsDispatched() {
			return false
		}
	}
	return true
}

// SetUrgent changes the urgency flag of the order.
//
// Business rules:
//   - Urgency can only change while every line is Pending; once any line has
//     been dispatched the call fails with an InvalidStateTransitionError
//   - Setting the flag to its current value is still subject to the same rule
func (o *Order) SetUrgent(urgent bool) error {
	if !o.IsFullyPending() {
		return errs.NewInvalidStateTransitionError("order", Dispatched.String())
	}

	o.urgent = urgent
	return nil
}

// EditItem overwrites the mutable fields of one product line.
//
// Business rules:
//   - The line must exist on this order
//   - The line must still be Pending; editing a Dispatched line fails with
//     an InvalidStateTransitionError and changes nothing
func (o *Order) EditItem(itemID kernel.UUID, productName string, orderedQty int, unit string, unitPrice float64) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	return item.Edit(productName, orderedQty, unit, unitPrice)
}

// DispatchItem marks one product line as fulfilled with the given quantity.
//
// Business rules:
//   - The line must exist on this order
//   - The line must still be Pending; a second dispatch fails with an
//     InvalidStateTransitionError even when the first left a shortfall
//   - The quantity must satisfy 0 < qty <= ordered quantity
func (o *Order) DispatchItem(itemID kernel.UUID, qty int, actor string, now time.Time) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	return item.Dispatch(qty, actor, now)
}

// setID sets the order's unique identifier with validation.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

// setCustomerName sets the customer name with validation.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	o.customerName = customerName
	return nil
}

// setCreatedBy sets the creating username with validation.
func (o *Order) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return ErrCreatedByIsRequired
	}

	o.createdBy = createdBy
	return nil
}

// setCreatedAt sets the creation timestamp with validation.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}

	o.createdAt = createdAt
	return nil
}

// setCurrency sets the currency code with validation.
// The code must be exactly three uppercase ASCII letters.
func (o *Order) setCurrency(currency string) error {
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency is invalid", fmt.Errorf("%q is not a three-letter code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency is invalid", fmt.Errorf("%q is not a three-letter code", currency))
		}
	}

	o.currency = currency
	return nil
}

// setItems sets the order's item collection with validation.
// Validates that the collection is not empty and all items are valid.
func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
