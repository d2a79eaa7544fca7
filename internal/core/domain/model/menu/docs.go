// Package menu holds the menu Item aggregate.
//
// Key business rules:
//   - an item belongs to exactly one category
//   - prices are positive and fit numeric(6,2), i.e. at most 9999.99
//   - the featured flag ("item of the day") is changed only through Feature and
//     Unfeature; the store keeps at most one item featured
package menu
