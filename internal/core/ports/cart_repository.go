package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart lines. Every method is
// scoped to a single owner.
type CartRepository interface {
	// ListByUser returns the owner's lines oldest first.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*cart.Item, error)

	// FindByMenuItem returns the owner's line for menuItemID or errs.ErrObjectNotFound.
	FindByMenuItem(ctx context.Context, userID, menuItemID kernel.UUID) (*cart.Item, error)

	Add(ctx context.Context, item *cart.Item) error

	// Update persists a changed quantity.
	Update(ctx context.Context, item *cart.Item) error

	// Clear removes every line of the owner.
	Clear(ctx context.Context, userID kernel.UUID) error
}
