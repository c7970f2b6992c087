// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are owned rows: they are written and deleted together with the
// order and never referenced from anywhere else.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName       string     `gorm:"not null"`
	LastName        string     `gorm:"not null"`
	PhoneNumber     string     `gorm:"not null"`
	DeliveryAddress string     `gorm:"not null"`
	Latitude        *float64   `gorm:"type:double precision"`
	Longitude       *float64   `gorm:"type:double precision"`
	Status          int        `gorm:"index"`
	PaymentType     int        `gorm:"not null"`
	RestaurantID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"index"`
	CalledAt        *time.Time
	DeliveredAt     *time.Time
	Comment         string
	LineItems       []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one stored order position with its locked total.
type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var restaurantID *uuid.UUID
	if id := aggregate.Restaurant(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	var latitude, longitude *float64
	if loc := aggregate.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lon
	}

	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, li := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			ID:        li.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: li.ProductID().Bytes(),
			Quantity:  li.Quantity(),
			LineTotal: li.LineTotal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		FirstName:       aggregate.FirstName(),
		LastName:        aggregate.LastName(),
		PhoneNumber:     aggregate.PhoneNumber(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Latitude:        latitude,
		Longitude:       longitude,
		Status:          int(aggregate.Status()),
		PaymentType:     int(aggregate.PaymentType()),
		RestaurantID:    restaurantID,
		CreatedAt:       aggregate.CreatedAt(),
		CalledAt:        aggregate.CalledAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Comment:         aggregate.Comment(),
		LineItems:       lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restErr != nil {
			return nil, restErr
		}
		restaurantID = &rID
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		liID, liErr := kernel.UUIDFromBytes(liDTO.ID[:])
		if liErr != nil {
			return nil, liErr
		}
		productID, pErr := kernel.UUIDFromBytes(liDTO.ProductID[:])
		if pErr != nil {
			return nil, pErr
		}

		li, liErr := order.RestoreLineItem(liID, productID, liDTO.Quantity, liDTO.LineTotal)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(
		id,
		dto.FirstName,
		dto.LastName,
		dto.PhoneNumber,
		dto.DeliveryAddress,
		location,
		order.Status(dto.Status),
		order.PaymentType(dto.PaymentType),
		restaurantID,
		dto.CreatedAt,
		dto.CalledAt,
		dto.DeliveredAt,
		dto.Comment,
		lineItems,
	)
}
