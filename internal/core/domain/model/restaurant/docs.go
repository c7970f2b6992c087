// Package restaurant provides domain entities for restaurants and their menus
// in the foodcart system.
//
// The package includes:
//   - Restaurant: The aggregate root holding identity, address, and resolved coordinates
//   - MenuItem: An availability row linking a restaurant to a product it currently offers
//
// Key business rules:
//   - Restaurant coordinates are derived from the address via geocoding, never entered
//     directly; they are either both present or both absent
//   - Changing the address to a new non-empty value triggers re-resolution; an
//     unresolved lookup keeps the previous coordinates
//   - A restaurant offers a product iff a MenuItem row exists with availability set;
//     the (restaurant, product) pair is unique
package restaurant
