package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a dish to the menu. The price is kept as the
// literal the client sent and parsed after authorization.
type CreateMenuItemCommand struct {
	actor      *identity.User
	title      string
	price      string
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	actor *identity.User,
	title, price string,
	categoryID kernel.UUID,
) CreateMenuItemCommand {
	return CreateMenuItemCommand{
		actor:      actor,
		title:      title,
		price:      price,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Actor() *identity.User {
	return c.actor
}

func (c CreateMenuItemCommand) Title() string {
	return c.title
}

func (c CreateMenuItemCommand) Price() string {
	return c.price
}

func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// parsePrice reports malformed prices against the "price" field.
func parsePrice(raw string) (kernel.Money, error) {
	if raw == "" {
		return kernel.Money{}, errs.NewValueIsRequiredError("price")
	}
	price, err := kernel.MoneyFromString(raw)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return price, nil
}
