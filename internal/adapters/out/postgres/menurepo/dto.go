// Package menurepo persists menu Item aggregates with GORM.
package menurepo

import (
	"time"

	"littlelemon/internal/adapters/out/postgres/categoryrepo"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO is the row of the menu_items table. Category is declared only so
// that migrations create the foreign key; it is never loaded or saved.
type MenuItemDTO struct {
	ID         uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Title      string                    `gorm:"size:255;not null;index"`
	Price      decimal.Decimal           `gorm:"type:numeric(6,2);not null;index"`
	Featured   bool                      `gorm:"not null;default:false"`
	CategoryID uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Category   *categoryrepo.CategoryDTO `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time                 `gorm:"not null;autoCreateTime"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Title:      item.Title(),
		Price:      item.Price().Decimal(),
		Featured:   item.IsFeatured(),
		CategoryID: item.CategoryID().Bytes(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.RestoreItem(id, dto.Title, price, dto.Featured, categoryID)
}
