package queries

import (
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func idFromRow(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func moneyFromRow(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d)
}

type categoryRow struct {
	ID    uuid.UUID
	Slug  string
	Title string
}

func (r categoryRow) toView() (CategoryView, error) {
	id, err := idFromRow(r.ID)
	if err != nil {
		return CategoryView{}, err
	}
	return CategoryView{ID: id, Slug: r.Slug, Title: r.Title}, nil
}

// menuItemColumns selects a menu item joined with its category, aliased to
// the fields of menuItemRow.
const menuItemColumns = `
	SELECT
		m.id,
		m.title,
		m.price,
		m.featured,
		c.id AS category_id,
		c.slug AS category_slug,
		c.title AS category_title
	FROM menu_items m
	JOIN categories c ON c.id = m.category_id
`

type menuItemRow struct {
	ID            uuid.UUID
	Title         string
	Price         decimal.Decimal
	Featured      bool
	CategoryID    uuid.UUID
	CategorySlug  string
	CategoryTitle string
}

func (r menuItemRow) toView() (MenuItemView, error) {
	id, err := idFromRow(r.ID)
	if err != nil {
		return MenuItemView{}, err
	}

	price, err := moneyFromRow(r.Price)
	if err != nil {
		return MenuItemView{}, err
	}

	category, err := categoryRow{ID: r.CategoryID, Slug: r.CategorySlug, Title: r.CategoryTitle}.toView()
	if err != nil {
		return MenuItemView{}, err
	}

	return MenuItemView{
		ID:       id,
		Title:    r.Title,
		Price:    price,
		Featured: r.Featured,
		Category: category,
	}, nil
}

func menuItemViews(rows []menuItemRow) ([]MenuItemView, error) {
	items := make([]MenuItemView, 0, len(rows))
	for _, r := range rows {
		item, err := r.toView()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
