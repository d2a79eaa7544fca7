// Package order provides the Order aggregate and the Status state machine that
// drives the placement, assignment and delivery workflow.
//
// Key business rules:
//   - Orders are placed from a non-empty cart and start Pending
//   - Only Pending or Assigned orders can be (re)assigned to a delivery crew member
//   - The crew member moves the order Assigned -> OutForDelivery -> Delivered,
//     or straight from Assigned to Delivered
//   - Delivered is final
package order
