// Package categoryrepo persists Category aggregates with GORM.
package categoryrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/category"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO is the row of the categories table.
type CategoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex"`
	Title     string    `gorm:"size:255;not null;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(c *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:    c.ID().Bytes(),
		Slug:  c.Slug(),
		Title: c.Title(),
	}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return category.NewCategory(id, dto.Slug, dto.Title)
}
