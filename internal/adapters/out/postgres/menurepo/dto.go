// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence. A menu item links a restaurant to a product it can
// cook; the pair is unique.
package menurepo

import (
	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
// The composite uniqueness constraint rejects duplicate restaurant/product rows.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_menu_restaurant_product;not null"`
	ProductID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_menu_restaurant_product;not null"`
	Availability bool      `gorm:"index"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item domain entity to its database representation.
func fromDomain(item *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		ProductID:    item.ProductID().Bytes(),
		Availability: item.Available(),
	}
}

// toDomain converts a database DTO to a menu item domain entity.
func toDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewMenuItem(id, restaurantID, productID, dto.Availability)
}
