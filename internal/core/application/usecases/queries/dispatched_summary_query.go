package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrDispatchedSummaryQueryIsNotConstructed = errors.New(
	"DispatchedSummaryQuery must be created via NewDispatchedSummaryQuery constructor",
)

// DispatchedSummaryQuery lists the lines dispatched inside a date range.
// Feeds the daily dispatch report.
type DispatchedSummaryQuery struct { //nolint:recvcheck //using for validation
	from      time.Time
	to        time.Time
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewDispatchedSummaryQuery creates a dispatched-lines query.
func NewDispatchedSummaryQuery(from, to time.Time, actorRole user.Role) (DispatchedSummaryQuery, error) {
	q := DispatchedSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setRange(from, to),
		q.setActorRole(actorRole),
	); err != nil {
		return DispatchedSummaryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q DispatchedSummaryQuery) Validate() error {
	return q.guard.Validate(ErrDispatchedSummaryQueryIsNotConstructed)
}

// From returns the inclusive start of the range.
func (q DispatchedSummaryQuery) From() time.Time {
	return q.from
}

// To returns the exclusive end of the range.
func (q DispatchedSummaryQuery) To() time.Time {
	return q.to
}

// ActorRole returns the role of the requesting user.
func (q DispatchedSummaryQuery) ActorRole() user.Role {
	return q.actorRole
}

func (q *DispatchedSummaryQuery) setRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return errs.NewValueIsRequiredError("date range")
	}
	if !to.After(from) {
		return errs.NewValueIsInvalidError("date range")
	}

	q.from = from
	q.to = to
	return nil
}

func (q *DispatchedSummaryQuery) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// DispatchedSummaryQueryResponse is one dispatched line in the summary.
type DispatchedSummaryQueryResponse struct {
	ItemID        kernel.UUID
	OrderID       kernel.UUID
	CustomerName  string
	ProductName   string
	OrderedQty    int
	DispatchedQty int
	Unit          string
	DispatchedAt  time.Time
	DispatchedBy  string
}
