// Package category holds the Category aggregate, the grouping menu items belong to.
package category

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

const (
	maxSlugLength  = 255
	maxTitleLength = 255
)

var (
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

	slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// Category is immutable once created. Its slug is unique across the store.
type Category struct {
	id    kernel.UUID
	slug  string
	title string

	isConstructed bool
}

func NewCategory(id kernel.UUID, slug, title string) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setSlug(slug),
		c.setTitle(title),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID {
	return c.id
}

func (c *Category) Slug() string {
	return c.slug
}

func (c *Category) Title() string {
	return c.title
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if len(slug) > maxSlugLength {
		return errs.NewValueIsOutOfRangeError("slug length", len(slug), 1, maxSlugLength)
	}
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause(
			"slug",
			fmt.Errorf("%q may contain only letters, digits, hyphens and underscores", slug),
		)
	}
	c.slug = slug
	return nil
}

func (c *Category) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, maxTitleLength)
	}
	c.title = title
	return nil
}
