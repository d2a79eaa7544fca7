// Package queries contains the read side of the ordering API. Handlers read
// straight from the database with GORM raw SQL and return read models shaped
// for the HTTP representations; they never load aggregates except for
// authentication, which needs the caller as an *identity.User.
package queries

import (
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

type CategoryView struct {
	ID    kernel.UUID
	Slug  string
	Title string
}

// MenuItemView is a menu item with its category expanded.
type MenuItemView struct {
	ID       kernel.UUID
	Title    string
	Price    kernel.Money
	Featured bool
	Category CategoryView
}

type CartItemView struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

type OrderItemView struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

// OrderView is an order with its lines in checkout order. DeliveryCrewID is
// nil while the order is pending.
type OrderView struct {
	ID             kernel.UUID
	UserID         kernel.UUID
	DeliveryCrewID *kernel.UUID
	Status         order.Status
	Total          kernel.Money
	Date           time.Time
	Items          []OrderItemView
}

type UserView struct {
	ID       kernel.UUID
	Username string
	Email    string
	IsStaff  bool
	Groups   []string
}

// NewUserView projects a user aggregate.
func NewUserView(u *identity.User) UserView {
	groups := make([]string, 0, len(u.Groups()))
	for _, g := range u.Groups() {
		groups = append(groups, g.String())
	}

	return UserView{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		IsStaff:  u.IsStaff(),
		Groups:   groups,
	}
}
