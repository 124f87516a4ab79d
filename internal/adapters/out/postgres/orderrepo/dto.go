// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper foreign
// key relationships to the lines.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerName string         `gorm:"type:varchar(255);not null"`
	CreatedBy    string         `gorm:"type:varchar(255);not null;index"`
	CreatedAt    time.Time      `gorm:"not null;index"`
	Urgent       bool           `gorm:"not null;index"`
	Currency     string         `gorm:"type:char(3);not null"`
	Address      string         `gorm:"type:text"`
	TaxID        string         `gorm:"type:varchar(64)"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order lines.
// Links to its order via foreign key and carries the dispatch record columns,
// which stay NULL while the line is Pending.
type OrderItemDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductName   string     `gorm:"type:varchar(255);not null"`
	OrderedQty    int        `gorm:"type:int;not null"`
	Unit          string     `gorm:"type:varchar(32);not null"`
	UnitPrice     float64    `gorm:"type:numeric(12,2);not null"`
	Status        int        `gorm:"type:int;not null;index"`
	DispatchedQty *int       `gorm:"type:int"`
	DispatchedAt  *time.Time `gorm:""`
	DispatchedBy  *string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all aggregate entities including lines and their dispatch records.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       orderID,
			ProductName:   item.ProductName(),
			OrderedQty:    item.OrderedQty(),
			Unit:          item.Unit(),
			UnitPrice:     item.UnitPrice(),
			Status:        int(item.Status()),
			DispatchedQty: item.DispatchedQty(),
			DispatchedAt:  item.DispatchedAt(),
			DispatchedBy:  item.DispatchedBy(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		CustomerName: aggregate.CustomerName(),
		CreatedBy:    aggregate.CreatedBy(),
		CreatedAt:    aggregate.CreatedAt(),
		Urgent:       aggregate.IsUrgent(),
		Currency:     aggregate.Currency(),
		Address:      aggregate.Address(),
		TaxID:        aggregate.TaxID(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CreatedBy,
		dto.CreatedAt,
		dto.Urgent,
		dto.Currency,
		dto.Address,
		dto.TaxID,
		items,
	)
}

// itemToDomain converts a line DTO to a domain entity.
// Uses RestoreItem to reconstruct the entity with its persisted dispatch record.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		dto.ProductName,
		dto.OrderedQty,
		dto.Unit,
		dto.UnitPrice,
		order.Status(dto.Status),
		dto.DispatchedQty,
		dto.DispatchedAt,
		dto.DispatchedBy,
	)
}
