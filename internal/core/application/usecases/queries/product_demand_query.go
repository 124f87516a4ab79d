package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrProductDemandQueryIsNotConstructed = errors.New(
	"ProductDemandQuery must be created via NewProductDemandQuery constructor",
)

// ProductDemandQuery aggregates ordered quantities per product over a date
// range. Used by the demand report to surface the highest and lowest demand
// products.
type ProductDemandQuery struct { //nolint:recvcheck //using for validation
	from      time.Time
	to        time.Time
	topN      int
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewProductDemandQuery creates a demand aggregation query.
// topN limits the ranking from each end; zero means the full ranking.
func NewProductDemandQuery(from, to time.Time, topN int, actorRole user.Role) (ProductDemandQuery, error) {
	q := ProductDemandQuery{
		topN:  topN,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setRange(from, to),
		q.setTopN(topN),
		q.setActorRole(actorRole),
	); err != nil {
		return ProductDemandQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ProductDemandQuery) Validate() error {
	return q.guard.Validate(ErrProductDemandQueryIsNotConstructed)
}

// From returns the inclusive start of the range.
func (q ProductDemandQuery) From() time.Time {
	return q.from
}

// To returns the exclusive end of the range.
func (q ProductDemandQuery) To() time.Time {
	return q.to
}

// TopN returns the ranking limit. Zero means unlimited.
func (q ProductDemandQuery) TopN() int {
	return q.topN
}

// ActorRole returns the role of the requesting user.
func (q ProductDemandQuery) ActorRole() user.Role {
	return q.actorRole
}

func (q *ProductDemandQuery) setRange(from, to time.Time) error {
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

func (q *ProductDemandQuery) setTopN(topN int) error {
	if topN < 0 {
		return errs.NewValueIsInvalidError("top n")
	}

	return nil
}

func (q *ProductDemandQuery) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// ProductDemandRow is one product's aggregate demand.
type ProductDemandRow struct {
	ProductName string
	TotalQty    int
	OrderCount  int
}

// ProductDemandQueryResponse ranks products by ordered quantity over the
// requested range.
type ProductDemandQueryResponse struct {
	// Highest lists products by descending total quantity.
	Highest []ProductDemandRow
	// Lowest lists products by ascending total quantity.
	Lowest []ProductDemandRow
}
