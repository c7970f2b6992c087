package queries

import (
	"context"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with their derived total amounts.
// Reads the order table directly with raw SQL; the total is a SUM over the
// locked line totals so price edits in the catalog never change it.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query := NewGetOrdersQuery(true)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are sorted by creation time, oldest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.first_name,
			o.last_name,
			o.phone_number,
			o.delivery_address,
			o.status,
			o.payment_type,
			o.restaurant_id,
			o.comment,
			COALESCE(SUM(li.line_total), 0) AS total_amount
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
	`
	args := make([]any, 0, 1)
	if query.ExcludeDelivered() {
		sql += ` WHERE o.status != ?`
		args = append(args, order.Delivered)
	}
	sql += `
		GROUP BY o.id, o.first_name, o.last_name, o.phone_number,
			o.delivery_address, o.status, o.payment_type, o.restaurant_id,
			o.comment, o.created_at
		ORDER BY o.created_at
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp         GetOrdersQueryResponse
			id           uuid.UUID
			status       int
			paymentType  int
			restaurantID uuid.NullUUID
			totalAmount  decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&resp.FirstName,
			&resp.LastName,
			&resp.PhoneNumber,
			&resp.DeliveryAddress,
			&status,
			&paymentType,
			&restaurantID,
			&resp.Comment,
			&totalAmount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if restaurantID.Valid {
			rID, ridErr := kernel.UUIDFromBytes(restaurantID.UUID[:])
			if ridErr != nil {
				return nil, ridErr
			}
			resp.RestaurantID = &rID
		}

		resp.StatusLabel = order.Status(status).Label()
		resp.PaymentLabel = order.PaymentType(paymentType).Label()
		resp.TotalAmount = totalAmount
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
