package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and delivery crew changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id regardless of owner. Used by managers.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOwnedBy retrieves an order placed by customerID. Orders of other
	// customers are reported as not found.
	GetOwnedBy(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error)

	// GetAssignedTo retrieves an order whose delivery crew is crewID. Orders
	// assigned to someone else, or to no one, are reported as not found.
	GetAssignedTo(ctx context.Context, id, crewID kernel.UUID) (*order.Order, error)
}
