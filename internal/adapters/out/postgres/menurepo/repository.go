package menurepo

import (
	"context"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/restaurant"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item. A duplicate restaurant/product pair is rejected
// by the database uniqueness constraint.
func (r *GormMenuRepository) Add(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing menu item (availability toggles).
func (r *GormMenuRepository) Update(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// GetByRestaurant retrieves all menu items of one restaurant.
func (r *GormMenuRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves every menu item currently marked available.
func (r *GormMenuRepository) GetAllAvailable(ctx context.Context) ([]*restaurant.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "availability = ?", true).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []MenuItemDTO) ([]*restaurant.MenuItem, error) {
	items := make([]*restaurant.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
