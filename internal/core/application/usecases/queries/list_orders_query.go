package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders scoped to the requesting user's role.
// Sales users see only the orders they created; Dispatch, Accounts, and
// Admin see every order. An optional line status filter narrows the result
// to orders that still carry lines in that status.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actorUsername string
	actorRole     user.Role
	statusFilter  *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders for the given actor.
// statusFilter may be nil to list orders regardless of line status.
func NewListOrdersQuery(actorUsername string, actorRole user.Role, statusFilter *order.Status) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(actorUsername, actorRole),
		q.setStatusFilter(statusFilter),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorUsername returns the username of the requesting user.
func (q ListOrdersQuery) ActorUsername() string {
	return q.actorUsername
}

// ActorRole returns the role of the requesting user.
func (q ListOrdersQuery) ActorRole() user.Role {
	return q.actorRole
}

// StatusFilter returns the optional line status filter. Nil means no filter.
func (q ListOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

func (q *ListOrdersQuery) setActor(actorUsername string, actorRole user.Role) error {
	if actorUsername == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorUsername = actorUsername
	q.actorRole = actorRole
	return nil
}

func (q *ListOrdersQuery) setStatusFilter(statusFilter *order.Status) error {
	if statusFilter == nil {
		return nil
	}
	if err := statusFilter.Validate(); err != nil {
		return err
	}

	q.statusFilter = statusFilter
	return nil
}

// OrderItemResponse is one product line in a ListOrdersQueryResponse.
type OrderItemResponse struct {
	ID            kernel.UUID
	ProductName   string
	OrderedQty    int
	Unit          string
	UnitPrice     float64
	Status        string
	DispatchedQty *int
	DispatchedAt  *time.Time
	DispatchedBy  *string
}

// ListOrdersQueryResponse is one order in the listing, in dispatch queue
// sequence: urgent orders first, then oldest first.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	CreatedBy    string
	CreatedAt    time.Time
	Urgent       bool
	Currency     string
	Address      string
	TaxID        string
	Items        []OrderItemResponse
}
