package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListCartItemsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListCartItemsQueryHandler(db *gorm.DB) ListCartItemsQueryHandler {
	return ListCartItemsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the caller's cart lines oldest first.
func (h ListCartItemsQueryHandler) Handle(ctx context.Context, query ListCartItemsQuery) ([]CartItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(query.Actor(), services.ViewCart); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			menu_item_id,
			quantity,
			unit_price,
			price
		FROM cart_items
		WHERE user_id = ?
		ORDER BY created_at, id
	`, query.Actor().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]CartItemView, 0)
	for rows.Next() {
		var (
			id, userID, menuItemID uuid.UUID
			unitPrice, price       decimal.Decimal
			line                   CartItemView
		)
		if err = rows.Scan(&id, &userID, &menuItemID, &line.Quantity, &unitPrice, &price); err != nil {
			return nil, err
		}

		if line.ID, err = idFromRow(id); err != nil {
			return nil, err
		}
		if line.UserID, err = idFromRow(userID); err != nil {
			return nil, err
		}
		if line.MenuItemID, err = idFromRow(menuItemID); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = moneyFromRow(unitPrice); err != nil {
			return nil, err
		}
		if line.Price, err = moneyFromRow(price); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
