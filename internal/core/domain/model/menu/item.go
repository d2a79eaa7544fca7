package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

const maxTitleLength = 255

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// MaxPrice is the largest price numeric(6,2) can hold.
	MaxPrice = kernel.MustMoney("9999.99")
)

// Item is a dish or drink that can be put into a cart.
type Item struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID

	isConstructed bool
}

// NewItem creates an unfeatured menu item.
func NewItem(id kernel.UUID, title string, price kernel.Money, categoryID kernel.UUID) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
		item.setCategory(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted menu item.
func RestoreItem(
	id kernel.UUID,
	title string,
	price kernel.Money,
	featured bool,
	categoryID kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, title, price, categoryID)
	if err != nil {
		return nil, err
	}
	item.featured = featured
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

func (i *Item) Title() string {
	return i.title
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) IsFeatured() bool {
	return i.featured
}

func (i *Item) CategoryID() kernel.UUID {
	return i.categoryID
}

// Revise replaces the editable fields. Either every field is applied or none is.
func (i *Item) Revise(title string, price kernel.Money, categoryID kernel.UUID) error {
	next := *i
	if err := errors.Join(
		next.setTitle(title),
		next.setPrice(price),
		next.setCategory(categoryID),
	); err != nil {
		return err
	}
	*i = next
	return nil
}

func (i *Item) Feature() {
	i.featured = true
}

func (i *Item) Unfeature() {
	i.featured = false
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, maxTitleLength)
	}
	i.title = title
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}
	if price.GreaterThan(MaxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0.01", MaxPrice.String())
	}
	i.price = price
	return nil
}

func (i *Item) setCategory(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("category", err)
	}
	i.categoryID = categoryID
	return nil
}
