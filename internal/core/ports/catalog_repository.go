package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/category"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
)

// CategoryRepository defines the persistence contract for categories.
type CategoryRepository interface {
	// Add persists a new category. A taken slug yields errs.ErrAlreadyExists.
	Add(ctx context.Context, aggregate *category.Category) error

	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)
}

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, aggregate *menu.Item) error

	// Update persists title, price and category. The featured flag is only
	// written by Feature.
	Update(ctx context.Context, aggregate *menu.Item) error

	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// Feature makes id the only featured item within one transaction, so
	// readers never observe zero or two featured items. Concurrent calls are
	// serialized.
	Feature(ctx context.Context, id kernel.UUID) error
}
