package orderrepo

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order and its lines to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByItemID retrieves the order owning the given line.
func (r *GormOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item OrderItemDTO
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order item", itemID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(item.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

// GetAll retrieves every order with its lines.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCreator retrieves every order placed by the given username.
func (r *GormOrderRepository) GetAllByCreator(ctx context.Context, createdBy string) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "created_by = ?", createdBy).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllWithPendingItems retrieves orders that still carry at least one
// Pending line.
func (r *GormOrderRepository) GetAllWithPendingItems(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id IN (?)", r.db.Model(&OrderItemDTO{}).Select("order_id").Where("status = ?", int(order.Pending))).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateItemDispatch records the dispatch of one line. The UPDATE is keyed on
// the line still being Pending, so two concurrent dispatchers cannot both
// succeed: the loser sees zero affected rows and gets an
// InvalidStateTransitionError.
func (r *GormOrderRepository) UpdateItemDispatch(ctx context.Context, itemID kernel.UUID, qty int, actor string, at time.Time) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
		Where("id = ? AND status = ?", itemID.Bytes(), int(order.Pending)).
		Updates(map[string]any{
			"status":         int(order.Dispatched),
			"dispatched_qty": qty,
			"dispatched_at":  at,
			"dispatched_by":  actor,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var item OrderItemDTO
		if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order item", itemID.String())
			}
			return err
		}
		return errs.NewInvalidStateTransitionError("order item", order.Status(item.Status).String())
	}

	return nil
}

// toDomainSlice converts a slice of DTOs to domain aggregates.
func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
