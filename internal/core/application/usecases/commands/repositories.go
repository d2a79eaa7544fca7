// Package commands contains business operations that modify system state.
// Every handler authorizes the caller first, then runs its changes inside a
// unit of work: begin, deferred rollback, commit.
package commands

import (
	"context"

	"littlelemon/internal/core/ports"
)

// Unit of Work interfaces narrow the full ports.UnitOfWork down to the
// repositories each group of handlers needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	TokenRepoFactory interface {
		TokenRepository() ports.TokenRepository
	}

	// CatalogUoW covers categories and menu items.
	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		MenuItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CartUoW covers cart lines and the menu items they price from.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuItemRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW covers checkout and the delivery workflow.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   lines, err := uow.CartRepository().ListByUser(ctx, customerID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.CartRepository().Clear(ctx, customerID)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		UserRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// IdentityUoW covers users, group memberships and tokens.
	IdentityUoW interface {
		TxManager
		UserRepoFactory
		TokenRepoFactory
	}

	IdentityUoWFactory interface {
		Create() IdentityUoW
	}
)
