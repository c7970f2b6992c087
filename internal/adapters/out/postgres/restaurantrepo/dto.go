// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence.
package restaurantrepo

import (
	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
// Coordinates are nullable: a restaurant whose address never resolved has none.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Address      string
	ContactPhone string
	Latitude     *float64 `gorm:"type:double precision"`
	Longitude    *float64 `gorm:"type:double precision"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	var latitude, longitude *float64
	if loc := aggregate.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lon
	}

	return RestaurantDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Address:      aggregate.Address(),
		ContactPhone: aggregate.ContactPhone(),
		Latitude:     latitude,
		Longitude:    longitude,
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Address, dto.ContactPhone, location)
}
