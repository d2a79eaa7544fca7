// Package ports defines the contracts between the application core and its
// infrastructure adapters.
package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Repositories obtained
// from it after Begin run inside the transaction; before Begin they use the
// plain connection.
//
// Handlers own the lifecycle:
//
//	if err := uow.Begin(ctx); err != nil {
//		return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//	// ... repository calls ...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is open, as after Commit. Deferred
	// callers ignore that error.
	Rollback(ctx context.Context) error

	CategoryRepository() CategoryRepository
	MenuItemRepository() MenuItemRepository
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	TokenRepository() TokenRepository
}
