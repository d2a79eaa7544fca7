package queries

import (
	"errors"
	"math"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1
	MaxPageSize       = 100

	maxPageNumber = math.MaxInt32
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via one of the NewListMenuItems... constructors",
)

// MenuListing selects how ListMenuItemsQueryHandler filters and orders items.
type MenuListing int

const (
	// ListAll returns every item in creation order. Requires an authenticated caller.
	ListAll MenuListing = iota + 1
	// ListByCategory returns the items of one category in creation order.
	ListByCategory
	// ListPage returns one page of the creation-ordered list.
	ListPage
	// ListByPrice returns every item cheapest first, ties broken by id.
	ListByPrice
)

// ListMenuItemsQuery reads the menu. Only ListAll needs a caller; the other
// listings are public.
//
// Example:
//
//	query := NewListMenuItemsPageQuery(nil, 2, 3)
//	items, err := handler.Handle(ctx, query) // items 5 and 6
type ListMenuItemsQuery struct {
	actor      *identity.User
	listing    MenuListing
	categoryID kernel.UUID
	pageSize   int
	pageNumber int

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(actor *identity.User) ListMenuItemsQuery {
	return ListMenuItemsQuery{actor: actor, listing: ListAll, guard: guard.NewConstructorGuard()}
}

func NewListMenuItemsByCategoryQuery(actor *identity.User, categoryID kernel.UUID) ListMenuItemsQuery {
	return ListMenuItemsQuery{
		actor:      actor,
		listing:    ListByCategory,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}
}

// NewListMenuItemsPageQuery pages through the menu. Pages are numbered from 1.
func NewListMenuItemsPageQuery(actor *identity.User, pageSize, pageNumber int) ListMenuItemsQuery {
	return ListMenuItemsQuery{
		actor:      actor,
		listing:    ListPage,
		pageSize:   pageSize,
		pageNumber: pageNumber,
		guard:      guard.NewConstructorGuard(),
	}
}

func NewListMenuItemsByPriceQuery(actor *identity.User) ListMenuItemsQuery {
	return ListMenuItemsQuery{actor: actor, listing: ListByPrice, guard: guard.NewConstructorGuard()}
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// ValidatePage checks the page bounds of a ListPage query.
func (q ListMenuItemsQuery) ValidatePage() error {
	if q.listing != ListPage {
		return nil
	}
	if q.pageSize < 1 || q.pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("page_size", q.pageSize, 1, MaxPageSize)
	}
	if q.pageNumber < 1 || q.pageNumber > maxPageNumber {
		return errs.NewValueIsOutOfRangeError("page_number", q.pageNumber, 1, maxPageNumber)
	}
	return nil
}

func (q ListMenuItemsQuery) Actor() *identity.User {
	return q.actor
}

func (q ListMenuItemsQuery) Listing() MenuListing {
	return q.listing
}

func (q ListMenuItemsQuery) CategoryID() kernel.UUID {
	return q.categoryID
}

func (q ListMenuItemsQuery) Limit() int {
	return q.pageSize
}

func (q ListMenuItemsQuery) Offset() int {
	return (q.pageNumber - 1) * q.pageSize
}
