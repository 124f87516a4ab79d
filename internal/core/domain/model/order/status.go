package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order item.
// It implements a state machine with defined transitions to ensure
// items follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Dispatched   (terminal, one-shot)
//	   │
//	   └──> Pending          (edit, mutation only)
//
// Dispatched is terminal: there is no undo, re-open, or follow-up dispatch of
// a shortfall. Status is a value object that validates state transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order item is first created.
	// Items in this status can be edited and are waiting to be dispatched.
	Pending

	// Dispatched indicates the item has been fulfilled, fully or partially.
	// This is a final state with no further transitions allowed.
	Dispatched
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Dispatched: "Dispatched",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Dispatched: "Dispatched",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Dispatched. Unknown (0) and any other values
// are invalid. This method ensures Status values from external sources
// (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Pending" or "Dispatched" for valid statuses and "Unknown" for
// invalid status values. Implements the fmt.Stringer interface and is safe
// to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateMutable checks if the status still allows field edits without
// performing any transition.
//
// Only Pending items are mutable. Editing a Dispatched item fails with
// an InvalidStateTransitionError and must leave the item unchanged.
func (s Status) ValidateMutable() error {
	if s != Pending {
		return errs.NewInvalidStateTransitionError("order item", s.String())
	}
	return nil
}

// ValidateDispatchRecord validates the consistency between an item's status
// and the presence of its dispatch record (quantity, timestamp, actor).
//
// Business rules:
//   - Pending items must not carry a dispatch record
//   - Dispatched items must carry a dispatch record
func (s Status) ValidateDispatchRecord(hasRecord bool) error {
	if hasRecord && s != Dispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s item cannot have a dispatch record", s.String()),
		)
	}

	if !hasRecord && s == Dispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s item must have a dispatch record", s.String()),
		)
	}

	return nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Pending -> Dispatched (one-shot fulfillment)
//
// Invalid transitions:
//   - Dispatched -> Dispatched (no re-dispatch of a shortfall)
//   - Unknown -> Dispatched (invalid initial state)
//
// Returns (Dispatched, nil) on a valid transition and (0, error) if the
// transition is not allowed from the current status. Used by Item.Dispatch
// to enforce the one-shot lifecycle.
func (s Status) Dispatch() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateTransitionError("order item", s.String())
	}

	return Dispatched, nil
}
