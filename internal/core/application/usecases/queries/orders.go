package queries

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRow struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DeliveryCrewID *uuid.UUID
	Status         int
	Total          decimal.Decimal
	Date           time.Time
}

type orderItemRow struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
	Price      decimal.Decimal
}

// Scope of an order read. Customers see the orders they placed, delivery crew
// the orders assigned to them.
type Scope int

const (
	CustomerScope Scope = iota + 1
	DeliveryCrewScope
)

func (s Scope) column() string {
	if s == DeliveryCrewScope {
		return "delivery_crew_id"
	}
	return "user_id"
}

// findOrders loads the orders owned by userID in scope, oldest first, with
// their items. A non-nil orderID narrows the result to that order.
func findOrders(
	ctx context.Context,
	db *gorm.DB,
	scope Scope,
	userID kernel.UUID,
	orderID *kernel.UUID,
) ([]OrderView, error) {
	db = db.WithContext(ctx)

	stmt := db.Table("orders").
		Select("id, user_id, delivery_crew_id, status, total, date").
		Where(scope.column()+" = ?", userID.Bytes())
	if orderID != nil {
		stmt = stmt.Where("id = ?", orderID.Bytes())
	}

	var rows []orderRow
	if err := stmt.Order("created_at, id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var itemRows []orderItemRow
	err := db.Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			quantity,
			unit_price,
			price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY position
	`, ids).Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]OrderItemView, len(rows))
	for _, r := range itemRows {
		item, itemErr := r.toView()
		if itemErr != nil {
			return nil, itemErr
		}
		itemsByOrder[r.OrderID] = append(itemsByOrder[r.OrderID], item)
	}

	for _, r := range rows {
		view, viewErr := r.toView(itemsByOrder[r.ID])
		if viewErr != nil {
			return nil, viewErr
		}
		orders = append(orders, view)
	}

	return orders, nil
}

func (r orderRow) toView(items []OrderItemView) (OrderView, error) {
	id, err := idFromRow(r.ID)
	if err != nil {
		return OrderView{}, err
	}

	customerID, err := idFromRow(r.UserID)
	if err != nil {
		return OrderView{}, err
	}

	var crewID *kernel.UUID
	if r.DeliveryCrewID != nil {
		crew, crewErr := idFromRow(*r.DeliveryCrewID)
		if crewErr != nil {
			return OrderView{}, crewErr
		}
		crewID = &crew
	}

	status := order.Status(r.Status)
	if err = status.Validate(); err != nil {
		return OrderView{}, err
	}

	total, err := moneyFromRow(r.Total)
	if err != nil {
		return OrderView{}, err
	}

	if items == nil {
		items = make([]OrderItemView, 0)
	}

	return OrderView{
		ID:             id,
		UserID:         customerID,
		DeliveryCrewID: crewID,
		Status:         status,
		Total:          total,
		Date:           r.Date,
		Items:          items,
	}, nil
}

func (r orderItemRow) toView() (OrderItemView, error) {
	id, err := idFromRow(r.ID)
	if err != nil {
		return OrderItemView{}, err
	}

	menuItemID, err := idFromRow(r.MenuItemID)
	if err != nil {
		return OrderItemView{}, err
	}

	unitPrice, err := moneyFromRow(r.UnitPrice)
	if err != nil {
		return OrderItemView{}, err
	}

	price, err := moneyFromRow(r.Price)
	if err != nil {
		return OrderItemView{}, err
	}

	return OrderItemView{
		ID:         id,
		MenuItemID: menuItemID,
		Quantity:   r.Quantity,
		UnitPrice:  unitPrice,
		Price:      price,
	}, nil
}
