// Package orderrepo persists Order aggregates, including their items, with GORM.
package orderrepo

import (
	"time"

	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Customer and DeliveryCrew are
// declared for the foreign keys only.
type OrderDTO struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	Customer       *userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	DeliveryCrewID *uuid.UUID        `gorm:"type:uuid;index"`
	DeliveryCrew   *userrepo.UserDTO `gorm:"foreignKey:DeliveryCrewID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Status         int               `gorm:"type:smallint;not null;index"`
	Total          decimal.Decimal   `gorm:"type:numeric(10,2);not null"`
	Date           time.Time         `gorm:"type:date;not null;index"`
	Items          []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt      time.Time         `gorm:"not null;autoCreateTime"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a line of an order. Prices are snapshots taken at checkout.
type OrderItemDTO struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_order_menuitem,priority:1"`
	MenuItemID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_order_menuitem,priority:2"`
	MenuItem   *menurepo.MenuItemDTO `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Position   int                   `gorm:"not null"`
	Quantity   int                   `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal       `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := o.DeliveryCrew(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: item.MenuItemID().Bytes(),
			Position:   i,
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Price:      item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		UserID:         o.CustomerID().Bytes(),
		DeliveryCrewID: crewID,
		Status:         int(o.Status()),
		Total:          o.Total().Decimal(),
		Date:           o.Date(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}

		crewID = &cID
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, crewID, order.Status(dto.Status), total, dto.Date, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return order.NewItem(id, menuItemID, dto.Quantity, unitPrice)
}
