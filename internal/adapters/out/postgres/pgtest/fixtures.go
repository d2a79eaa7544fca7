package pgtest

import (
	"context"

	postgresadapter "littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/core/domain/model/category"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
)

// SeedUser stores a user with the given groups. The password is "password123".
func (d *Database) SeedUser(ctx context.Context, username string, groups ...identity.Group) (*identity.User, error) {
	hash, err := identity.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	u, err := identity.RestoreUser(kernel.NewUUID(), username, username+"@littlelemon.test", hash, false, groups)
	if err != nil {
		return nil, err
	}

	uow := postgresadapter.NewGormUnitOfWorkFactory(d.DB).Create()
	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SeedCategory stores a category.
func (d *Database) SeedCategory(ctx context.Context, slug, title string) (*category.Category, error) {
	c, err := category.NewCategory(kernel.NewUUID(), slug, title)
	if err != nil {
		return nil, err
	}

	uow := postgresadapter.NewGormUnitOfWorkFactory(d.DB).Create()
	if err = uow.CategoryRepository().Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SeedMenuItem stores a menu item priced at price, for example "5.50".
func (d *Database) SeedMenuItem(ctx context.Context, title, price string, categoryID kernel.UUID) (*menu.Item, error) {
	amount, err := kernel.MoneyFromString(price)
	if err != nil {
		return nil, err
	}

	item, err := menu.NewItem(kernel.NewUUID(), title, amount, categoryID)
	if err != nil {
		return nil, err
	}

	uow := postgresadapter.NewGormUnitOfWorkFactory(d.DB).Create()
	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
