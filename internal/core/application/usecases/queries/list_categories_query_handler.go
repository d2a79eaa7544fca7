package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListCategoriesQueryHandler returns every category ordered by title.
type ListCategoriesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(query.Actor(), services.ListCategories); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			slug,
			title
		FROM categories
		ORDER BY title, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var r categoryRow
		if err = rows.Scan(&r.ID, &r.Slug, &r.Title); err != nil {
			return nil, err
		}

		view, viewErr := r.toView()
		if viewErr != nil {
			return nil, viewErr
		}
		categories = append(categories, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
