package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// DispatchedSummaryQueryHandler reads the lines dispatched inside a range.
// Visible to Dispatch, Accounts, and Admin.
type DispatchedSummaryQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewDispatchedSummaryQueryHandler creates a handler for dispatch summaries.
func NewDispatchedSummaryQueryHandler(db *gorm.DB) DispatchedSummaryQueryHandler {
	return DispatchedSummaryQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the summary query, oldest dispatch first.
func (h DispatchedSummaryQueryHandler) Handle(ctx context.Context, query DispatchedSummaryQuery) ([]DispatchedSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.ActorRole(), services.OpViewReports); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			o.customer_name,
			i.product_name,
			i.ordered_qty,
			i.dispatched_qty,
			i.unit,
			i.dispatched_at,
			i.dispatched_by
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE i.status = ?
		  AND i.dispatched_at >= ? AND i.dispatched_at < ?
		ORDER BY i.dispatched_at ASC, i.id ASC
	`, int(order.Dispatched), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]DispatchedSummaryQueryResponse, 0)
	for rows.Next() {
		var resp DispatchedSummaryQueryResponse
		var itemID, orderID uuid.UUID

		if err = rows.Scan(&itemID, &orderID, &resp.CustomerName, &resp.ProductName, &resp.OrderedQty, &resp.DispatchedQty, &resp.Unit, &resp.DispatchedAt, &resp.DispatchedBy); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ItemID = id

		id, idErr = kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = id

		summary = append(summary, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
