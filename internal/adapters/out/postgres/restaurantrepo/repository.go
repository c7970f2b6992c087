package restaurantrepo

import (
	"context"
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/restaurant"
	"foodcart/internal/core/ports"
	"foodcart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
//
// Address handling follows the same pattern as orders: a new restaurant with a
// non-empty address is geocoded on Add, and Update re-geocodes when the stored
// address differs from the incoming one. An unresolved lookup keeps whatever
// coordinates were stored before.
type GormRestaurantRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	geocoder ports.Geocoder
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
// The geocoder may be nil; addresses then stay unresolved.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker, geocoder ports.Geocoder) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:       db,
		tracker:  tracker,
		geocoder: geocoder,
	}
}

// Add saves a new restaurant to the database, resolving its address first.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.Address() != "" && aggregate.Location() == nil {
		r.resolveLocation(ctx, aggregate)
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant, re-resolving coordinates when the
// address changed.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	prev, err := r.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if needsGeocode := restaurant.ReconcileOnSave(prev, aggregate); needsGeocode {
		r.resolveLocation(ctx, aggregate)
	}

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every restaurant.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

// Delete removes a restaurant together with its menu items. Orders keep their
// history: the executing-restaurant reference is cleared, nothing else changes.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Exec(
		"UPDATE orders SET restaurant_id = NULL WHERE restaurant_id = ?", id.Bytes(),
	).Error; err != nil {
		return err
	}

	if err := db.Exec(
		"DELETE FROM menu_items WHERE restaurant_id = ?", id.Bytes(),
	).Error; err != nil {
		return err
	}

	result := db.Delete(&RestaurantDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}

	return nil
}

// resolveLocation geocodes the aggregate's address in place.
// Failures and unresolved addresses are silently ignored.
func (r *GormRestaurantRepository) resolveLocation(ctx context.Context, aggregate *restaurant.Restaurant) {
	if r.geocoder == nil {
		return
	}

	if location, err := r.geocoder.Resolve(ctx, aggregate.Address()); err == nil && location != nil {
		_ = aggregate.SetLocation(*location)
	}
}
