package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand adds a menu category. Only staff may run it.
type CreateCategoryCommand struct {
	actor *identity.User
	slug  string
	title string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand captures the raw input; it is validated by the
// handler once the caller is authorized.
func NewCreateCategoryCommand(actor *identity.User, slug, title string) CreateCategoryCommand {
	return CreateCategoryCommand{
		actor: actor,
		slug:  slug,
		title: title,
		guard: guard.NewConstructorGuard(),
	}
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Actor() *identity.User {
	return c.actor
}

func (c CreateCategoryCommand) Slug() string {
	return c.slug
}

func (c CreateCategoryCommand) Title() string {
	return c.title
}
