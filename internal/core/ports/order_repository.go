package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders together
// with their product lines.
type OrderRepository interface {
	// Add persists a new order aggregate with all its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order aggregate owning the given line.
	// Returns an ObjectNotFoundError when no order carries the line.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order with its lines.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCreator retrieves every order placed by the given username.
	GetAllByCreator(ctx context.Context, createdBy string) ([]*order.Order, error)

	// GetAllWithPendingItems retrieves orders that still carry at least one
	// Pending line. Used to build the dispatch queue.
	GetAllWithPendingItems(ctx context.Context) ([]*order.Order, error)

	// UpdateItemDispatch records the dispatch of one line, guarded against
	// concurrent dispatchers. The write only succeeds while the stored line
	// is still Pending; a lost race surfaces as an InvalidStateTransitionError.
	UpdateItemDispatch(ctx context.Context, itemID kernel.UUID, qty int, actor string, at time.Time) error
}
