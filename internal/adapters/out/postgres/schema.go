package postgres

import (
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/categoryrepo"
	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.UserGroupDTO{},
		&userrepo.TokenDTO{},
		&categoryrepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// singleFeaturedIndex allows at most one featured menu item.
const singleFeaturedIndex = "CREATE UNIQUE INDEX IF NOT EXISTS idx_menu_items_single_featured " +
	"ON menu_items (featured) WHERE featured"

// Migrate creates or updates the schema, including foreign keys and the
// partial index behind the item of the day.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return db.Exec(singleFeaturedIndex).Error
}

// TruncateAll empties every table. Intended for integration tests.
func TruncateAll(db *gorm.DB) error {
	return db.Exec(
		"TRUNCATE TABLE order_items, orders, cart_items, menu_items, categories, tokens, user_groups, users CASCADE",
	).Error
}
