// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the foodcart system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - FulfillmentMatcher: A domain service that finds the restaurants able to
//     cook an entire order and ranks them by proximity to the delivery address
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
