package queries

import (
	"context"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// DispatchQueueQueryHandler builds the dispatch work queue. Unlike the other
// read handlers it goes through the order repository and the domain queue
// policy rather than raw SQL, so the fulfillment sequence has exactly one
// authoritative implementation.
type DispatchQueueQueryHandler struct {
	orders ports.OrderRepository
	queue  services.DispatchQueue
	policy services.AccessPolicy
}

// NewDispatchQueueQueryHandler creates a handler for the dispatch queue.
func NewDispatchQueueQueryHandler(orders ports.OrderRepository) DispatchQueueQueryHandler {
	return DispatchQueueQueryHandler{
		orders: orders,
		queue:  services.NewDispatchQueue(),
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the dispatch queue query.
func (h DispatchQueueQueryHandler) Handle(ctx context.Context, query DispatchQueueQuery) ([]DispatchQueueLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.ActorRole(), services.OpListAllOrders); err != nil {
		return nil, err
	}

	pending, err := h.orders.GetAllWithPendingItems(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := h.queue.Arrange(pending)
	if err != nil {
		return nil, err
	}

	out := make([]DispatchQueueLineResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, DispatchQueueLineResponse{
			ItemID:       entry.Item.ID(),
			OrderID:      entry.Order.ID(),
			CustomerName: entry.Order.CustomerName(),
			Urgent:       entry.Order.IsUrgent(),
			CreatedAt:    entry.Order.CreatedAt(),
			ProductName:  entry.Item.ProductName(),
			OrderedQty:   entry.Item.OrderedQty(),
			Unit:         entry.Item.Unit(),
		})
	}

	return out, nil
}
