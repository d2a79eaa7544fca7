// Package cart models a customer's shopping cart as a set of lines, one per menu
// item, owned by exactly one user.
package cart

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 1000
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one cart line. The unit price is captured from the menu when the line is
// created; the line price is always unit price times quantity.
type Item struct {
	id         kernel.UUID
	userID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	isConstructed bool
}

func NewItem(
	id, userID, menuItemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setUser(userID),
		item.setMenuItem(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) UserID() kernel.UUID {
	return i.userID
}

func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *Item) Price() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

// IsOwnedBy reports whether the line belongs to userID's cart.
func (i *Item) IsOwnedBy(userID kernel.UUID) bool {
	return i.userID.IsEqual(userID)
}

// Increase adds quantity to the line, keeping the total within bounds.
func (i *Item) Increase(quantity int) error {
	if quantity < MinQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	return i.setQuantity(i.quantity + quantity)
}

// Total sums the line prices of items.
func Total(items []*Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.Price())
	}
	return total
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setUser(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	i.userID = userID
	return nil
}

func (i *Item) setMenuItem(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuitem", err)
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidError("unit price")
	}
	i.unitPrice = unitPrice
	return nil
}
