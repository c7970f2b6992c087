package orderrepo

import (
	"context"
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
	"foodcart/internal/core/ports"
	"foodcart/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Update enforces the save-reconciliation rules: the previously stored state is
// loaded, locked line totals are restored onto the incoming aggregate, the
// first restaurant assignment forces the status, and a changed delivery address
// is re-geocoded before the row is written.
type GormOrderRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	geocoder ports.Geocoder
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
// The geocoder may be nil; address changes then keep prior coordinates.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, geocoder ports.Geocoder) *GormOrderRepository {
	return &GormOrderRepository{
		db:       db,
		tracker:  tracker,
		geocoder: geocoder,
	}
}

// Add saves a new order with its line items to the database.
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

// Update saves an existing order to the database after reconciling it against
// the stored state.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	prev, err := r.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if needsGeocode := order.ReconcileOnSave(prev, aggregate); needsGeocode && r.geocoder != nil {
		if location, geoErr := r.geocoder.Resolve(ctx, aggregate.DeliveryAddress()); geoErr == nil && location != nil {
			if err = aggregate.SetLocation(*location); err != nil {
				return err
			}
		}
	}

	dto := fromDomain(aggregate)

	keep := make([]uuid.UUID, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		keep = append(keep, li.ID)
	}
	if err = r.db.WithContext(ctx).
		Where("order_id = ? AND id NOT IN ?", dto.ID, keep).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("LineItems").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInSubmittedStatus retrieves the oldest order still waiting for a
// restaurant assignment.
func (r *GormOrderRepository) GetFirstInSubmittedStatus(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Order("created_at").
		First(&dto, "status = ?", order.Submitted).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first in submitted status")
		}
		return nil, err
	}

	return toDomain(dto)
}
