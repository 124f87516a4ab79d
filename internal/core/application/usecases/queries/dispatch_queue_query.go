package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrDispatchQueueQueryIsNotConstructed = errors.New(
	"DispatchQueueQuery must be created via NewDispatchQueueQuery constructor",
)

// DispatchQueueQuery retrieves the dispatch work queue: every pending line
// in fulfillment sequence. Urgent orders come first, then oldest orders
// first, with the line identifier as tie-break.
type DispatchQueueQuery struct { //nolint:recvcheck //using for validation
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewDispatchQueueQuery creates a query for the dispatch work queue.
func NewDispatchQueueQuery(actorRole user.Role) (DispatchQueueQuery, error) {
	q := DispatchQueueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorRole(actorRole); err != nil {
		return DispatchQueueQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q DispatchQueueQuery) Validate() error {
	return q.guard.Validate(ErrDispatchQueueQueryIsNotConstructed)
}

// ActorRole returns the role of the requesting user.
func (q DispatchQueueQuery) ActorRole() user.Role {
	return q.actorRole
}

func (q *DispatchQueueQuery) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// DispatchQueueLineResponse is one pending line in the dispatch queue, in
// fulfillment sequence.
type DispatchQueueLineResponse struct {
	ItemID       kernel.UUID
	OrderID      kernel.UUID
	CustomerName string
	Urgent       bool
	CreatedAt    time.Time
	ProductName  string
	OrderedQty   int
	Unit         string
}
