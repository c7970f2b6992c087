// Package order provides domain entities and business logic for order management
// in the foodcart system. It implements the Order aggregate root with lifecycle
// management, price locking, and status transitions.
//
// The package includes:
//   - Order: The aggregate root that manages customer data, delivery address, and lifecycle
//   - LineItem: An ordered product with its quantity and the line total locked at creation
//   - Status: A state machine over Submitted -> InProgress -> InDelivery -> Delivered
//   - PaymentType: A closed enum of accepted payment methods with display labels
//
// Key business rules:
//   - A line item's total is quantity times the product's unit price at creation time
//     and never changes afterwards, regardless of later catalog price changes
//   - Assigning an executing restaurant to an order that had none forces the status
//     to InProgress, overriding whatever the caller supplied in the same update
//   - Changing the delivery address to a new non-empty value triggers re-geocoding
//     at the persistence boundary; an unresolved lookup keeps prior coordinates
//   - An order with an executing restaurant can not be in the Submitted status
package order
