package services

import (
	"sort"

	"orderdesk/internal/core/domain/model/order"
)

// DispatchQueue is a domain service that arranges pending order lines into
// the sequence dispatch users work through.
//
// Business rules:
//   - Lines of urgent orders come before lines of non-urgent orders
//   - Within the same urgency, older orders come first (creation time FIFO)
//   - Lines of the same order keep a stable relative position by line ID
//
// The queue carries only Pending lines; dispatched lines drop out of it.
type DispatchQueue struct{}

// NewDispatchQueue creates a new DispatchQueue instance.
func NewDispatchQueue() DispatchQueue {
	return DispatchQueue{}
}

// QueueEntry is one pending line together with the order header fields the
// queue is sorted by.
type QueueEntry struct {
	Order *order.Order
	Item  *order.Item
}

// Arrange flattens the given orders into their pending lines and sorts them
// into dispatch sequence: urgent first, then oldest order first, then line ID
// for a deterministic total order.
func (q DispatchQueue) Arrange(orders []*order.Order) ([]QueueEntry, error) {
	entries := make([]QueueEntry, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		for _, item := range o.Items() {
			if item.Status() != order.Pending {
				continue
			}
			entries = append(entries, QueueEntry{Order: o, Item: item})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return q.less(entries[i], entries[j])
	})

	return entries, nil
}

// Sort orders whole orders into the same sequence the line queue uses:
// urgent first, then oldest first, then order ID.
func (q DispatchQueue) Sort(orders []*order.Order) []*order.Order {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsUrgent() != b.IsUrgent() {
			return a.IsUrgent()
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().Before(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})

	return sorted
}

// less reports whether entry a precedes entry b in the dispatch queue.
func (q DispatchQueue) less(a, b QueueEntry) bool {
	if a.Order.IsUrgent() != b.Order.IsUrgent() {
		return a.Order.IsUrgent()
	}
	if !a.Order.CreatedAt().Equal(b.Order.CreatedAt()) {
		return a.Order.CreatedAt().Before(b.Order.CreatedAt())
	}
	return a.Item.ID().String() < b.Item.ID().String()
}
