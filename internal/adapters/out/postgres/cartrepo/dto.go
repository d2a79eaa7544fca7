// Package cartrepo persists cart lines with GORM.
package cartrepo

import (
	"time"

	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemDTO is the row of the cart_items table. A user holds at most one
// line per menu item.
type CartItemDTO struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_menuitem,priority:1"`
	User       *userrepo.UserDTO     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	MenuItemID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_menuitem,priority:2"`
	MenuItem   *menurepo.MenuItemDTO `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Quantity   int                   `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal       `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time             `gorm:"not null;autoCreateTime"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:         item.ID().Bytes(),
		UserID:     item.UserID().Bytes(),
		MenuItemID: item.MenuItemID().Bytes(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice().Decimal(),
		Price:      item.Price().Decimal(),
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
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
	return cart.NewItem(id, userID, menuItemID, dto.Quantity, unitPrice)
}
