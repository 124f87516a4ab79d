package order

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem. This ensures all items are properly validated.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrProductNameIsRequired is returned when attempting to create an item
	// without a product name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")

	// ErrUnitIsRequired is returned when attempting to create an item without
	// a unit of measure.
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")

	// ErrDispatchActorIsRequired is returned when dispatching without a known actor.
	ErrDispatchActorIsRequired = errs.NewValueIsRequiredError("dispatching actor")
)

// Item is one product line within an Order. It carries the ordered product,
// quantity, unit, and price, plus the dispatch record once the line has been
// fulfilled.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a non-empty product name
//   - Ordered quantity must be positive, unit price must not be negative
//   - Dispatch record (quantity, timestamp, actor) is set if and only if
//     status is Dispatched
//   - Dispatched quantity satisfies 0 < quantity <= ordered quantity
//   - Status transitions only Pending -> Dispatched, never back
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Item struct {
	// id is the unique identifier for the order line
	id kernel.UUID

	// productName is what the customer ordered
	productName string

	// orderedQty is the ordered quantity (must be positive)
	orderedQty int

	// unit is the unit of measure, e.g. "KG" or "BAG"
	unit string

	// unitPrice is the price per unit in the order's currency
	unitPrice float64

	// status is the current state in the item lifecycle
	status Status

	// dispatchedQty is the fulfilled quantity (nil until dispatched)
	dispatchedQty *int

	// dispatchedAt is the fulfillment timestamp (nil until dispatched)
	dispatchedAt *time.Time

	// dispatchedBy is the fulfilling actor's username (nil until dispatched)
	dispatchedBy *string

	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates a new Pending order line with validation. This is the only
// way to create a fresh Item, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the line (must be a valid UUID)
//   - productName: Ordered product (must be non-empty)
//   - orderedQty: Ordered quantity (must be positive)
//   - unit: Unit of measure (must be non-empty)
//   - unitPrice: Price per unit (must not be negative)
//
// Returns the created item, or a validation error if any parameter is
// invalid. Multiple validation failures are joined into one error.
func NewItem(id kernel.UUID, productName string, orderedQty int, unit string, unitPrice float64) (*Item, error) {
	item := &Item{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setOrderedQty(orderedQty),
		item.setUnit(unit),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage, including its
// dispatch record. Unlike NewItem, the status and dispatch fields come from
// the database and are validated for mutual consistency: a Pending item must
// carry no dispatch record, a Dispatched item must carry a complete one, and
// the dispatched quantity must satisfy 0 < quantity <= ordered quantity.
func RestoreItem(
	id kernel.UUID,
	productName string,
	orderedQty int,
	unit string,
	unitPrice float64,
	status Status,
	dispatchedQty *int,
	dispatchedAt *time.Time,
	dispatchedBy *string,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setOrderedQty(orderedQty),
		item.setUnit(unit),
		item.setUnitPrice(unitPrice),
		item.setStatus(status),
	); err != nil {
		return nil, err
	}

	hasRecord := dispatchedQty != nil && dispatchedAt != nil && dispatchedBy != nil
	if err := status.ValidateDispatchRecord(hasRecord); err != nil {
		return nil, err
	}

	if hasRecord {
		if *dispatchedQty <= 0 || *dispatchedQty > item.orderedQty {
			return nil, errs.NewInvalidQuantityError("dispatched quantity", *dispatchedQty, item.orderedQty)
		}
		item.dispatchedQty = dispatchedQty
		item.dispatchedAt = dispatchedAt
		item.dispatchedBy = dispatchedBy
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through
// NewItem or RestoreItem. This prevents bypassing validation by directly
// instantiating the struct.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}

	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the ordered product name.
func (i *Item) ProductName() string {
	return i.productName
}

// OrderedQty returns the ordered quantity.
func (i *Item) OrderedQty() int {
	return i.orderedQty
}

// Unit returns the unit of measure.
func (i *Item) Unit() string {
	return i.unit
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Status returns the current status of the item.
func (i *Item) Status() Status {
	return i.status
}

// DispatchedQty returns the fulfilled quantity.
// Returns nil while the item is Pending.
func (i *Item) DispatchedQty() *int {
	return i.dispatchedQty
}

// DispatchedAt returns the fulfillment timestamp.
// Returns nil while the item is Pending.
func (i *Item) DispatchedAt() *time.Time {
	return i.dispatchedAt
}

// DispatchedBy returns the username of the dispatching actor.
// Returns nil while the item is Pending.
func (i *Item) DispatchedBy() *string {
	return i.dispatchedBy
}

// IsDispatched reports whether the item has reached its terminal state.
func (i *Item) IsDispatched() bool {
	return i.status == Dispatched
}

// Shortfall returns the gap between the ordered and dispatched quantities.
// Returns zero while the item is Pending or when it was fulfilled in full.
func (i *Item) Shortfall() int {
	if i.dispatchedQty == nil {
		return 0
	}
	return i.orderedQty - *i.dispatchedQty
}

// Edit overwrites the mutable fields of a Pending item.
//
// Business rules:
//   - Only Pending items can be edited; editing a Dispatched item fails
//     with an InvalidStateTransitionError and changes nothing
//   - The new values pass the same validation as NewItem
//
// Identifiers and the dispatch record are never altered by Edit.
func (i *Item) Edit(productName string, orderedQty int, unit string, unitPrice float64) error {
	if err := i.status.ValidateMutable(); err != nil {
		return err
	}

	// Apply to a copy so a failed edit leaves the item untouched.
	edited := *i
	if err := errors.Join(
		edited.setProductName(productName),
		edited.setOrderedQty(orderedQty),
		edited.setUnit(unit),
		edited.setUnitPrice(unitPrice),
	); err != nil {
		return err
	}

	*i = edited
	return nil
}

// Dispatch marks the item as fulfilled with the given quantity.
//
// Business rules:
//   - The item must be Pending; a second dispatch fails with an
//     InvalidStateTransitionError, even when the first one left a shortfall
//   - The quantity must satisfy 0 < qty <= ordered quantity, otherwise the
//     call fails with an InvalidQuantityError
//   - The actor must be known
//
// On success the item becomes Dispatched (terminal) and records the
// quantity, timestamp, and actor. On failure nothing changes.
func (i *Item) Dispatch(qty int, actor string, now time.Time) error {
	newStatus, err := i.status.Dispatch()
	if err != nil {
		return err
	}

	if qty <= 0 || qty > i.orderedQty {
		return errs.NewInvalidQuantityError("dispatched quantity", qty, i.orderedQty)
	}

	if actor == "" {
		return ErrDispatchActorIsRequired
	}

	i.status = newStatus
	i.dispatchedQty = &qty
	i.dispatchedAt = &now
	i.dispatchedBy = &actor
	return nil
}

// setID validates and sets the item's unique identifier.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setProductName validates and sets the product name.
func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}
	i.productName = productName
	return nil
}

// setOrderedQty validates and sets the ordered quantity.
// The quantity must be positive.
func (i *Item) setOrderedQty(orderedQty int) error {
	if orderedQty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ordered quantity is invalid", fmt.Errorf("%d is not greater than 0", orderedQty))
	}
	i.orderedQty = orderedQty
	return nil
}

// setUnit validates and sets the unit of measure.
func (i *Item) setUnit(unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}
	i.unit = unit
	return nil
}

// setUnitPrice validates and sets the unit price.
// The price must not be negative.
func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%g is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

// setStatus validates and sets the status during restoration.
func (i *Item) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
