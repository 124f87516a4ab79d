package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
)

// ListOrdersQueryHandler reads orders with their lines from the database.
//
// Scoping rules:
//   - Sales sees only orders it created
//   - Dispatch, Accounts, and Admin see every order
//   - With dispatchOwnOnly enabled, Dispatch additionally sees only the
//     dispatched lines it fulfilled itself (pending lines stay visible)
//
// Results come back in dispatch queue sequence: urgent orders first, then
// oldest first.
type ListOrdersQueryHandler struct {
	db              *gorm.DB
	policy          services.AccessPolicy
	dispatchOwnOnly bool
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB, dispatchOwnOnly bool) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewAccessPolicy(), dispatchOwnOnly: dispatchOwnOnly}
}

// Handle executes the listing query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.loadOrders(ctx, query)
	if err != nil {
		return nil, err
	}

	if err = h.loadItems(ctx, query, index); err != nil {
		return nil, err
	}

	// A line status filter narrows the listing to orders that still carry
	// at least one matching line.
	if query.StatusFilter() != nil {
		filtered := make([]ListOrdersQueryResponse, 0, len(orders))
		for _, o := range orders {
			if len(index[o.ID.String()].Items) > 0 {
				filtered = append(filtered, *index[o.ID.String()])
			}
		}
		return filtered, nil
	}

	out := make([]ListOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *index[o.ID.String()])
	}
	return out, nil
}

// loadOrders reads the order headers in queue sequence and indexes them by ID.
func (h ListOrdersQueryHandler) loadOrders(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, map[string]*ListOrdersQueryResponse, error) {
	sql := `
		SELECT
			id,
			customer_name,
			created_by,
			created_at,
			urgent,
			currency,
			address,
			tax_id
		FROM orders
	`
	args := make([]any, 0, 1)
	if !h.policy.CanSeeAllOrders(query.ActorRole()) {
		sql += ` WHERE created_by = ?`
		args = append(args, query.ActorUsername())
	}
	// Header rows tie-break on the order id; the line-level sequence in
	// services.DispatchQueue breaks createdAt ties on the item id instead.
	sql += ` ORDER BY urgent DESC, created_at ASC, id ASC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	index := make(map[string]*ListOrdersQueryResponse)

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(&id, &resp.CustomerName, &resp.CreatedBy, &createdAt, &resp.Urgent, &resp.Currency, &resp.Address, &resp.TaxID); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.ID = orderID
		resp.CreatedAt = createdAt
		resp.Items = make([]OrderItemResponse, 0)

		orders = append(orders, resp)
		index[resp.ID.String()] = &orders[len(orders)-1]
	}

	return orders, index, rows.Err()
}

// loadItems reads the lines of the indexed orders and attaches them.
func (h ListOrdersQueryHandler) loadItems(ctx context.Context, query ListOrdersQuery, index map[string]*ListOrdersQueryResponse) error {
	sql := `
		SELECT
			i.id,
			i.order_id,
			i.product_name,
			i.ordered_qty,
			i.unit,
			i.unit_price,
			i.status,
			i.dispatched_qty,
			i.dispatched_at,
			i.dispatched_by
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
	`
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if !h.policy.CanSeeAllOrders(query.ActorRole()) {
		conditions = append(conditions, `o.created_by = ?`)
		args = append(args, query.ActorUsername())
	}
	if query.StatusFilter() != nil {
		conditions = append(conditions, `i.status = ?`)
		args = append(args, int(*query.StatusFilter()))
	}
	if h.dispatchOwnOnly && query.ActorRole() == user.RoleDispatch {
		conditions = append(conditions, `(i.dispatched_by IS NULL OR i.dispatched_by = ?)`)
		args = append(args, query.ActorUsername())
	}
	for i, cond := range conditions {
		if i == 0 {
			sql += ` WHERE ` + cond
		} else {
			sql += ` AND ` + cond
		}
	}
	sql += ` ORDER BY i.id ASC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, orderID uuid.UUID
		var status int

		if err = rows.Scan(&id, &orderID, &item.ProductName, &item.OrderedQty, &item.Unit, &item.UnitPrice, &status, &item.DispatchedQty, &item.DispatchedAt, &item.DispatchedBy); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		item.ID = itemID
		item.Status = statusString(status)

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if owner, ok := index[ownerID.String()]; ok {
			owner.Items = append(owner.Items, item)
		}
	}

	return rows.Err()
}
