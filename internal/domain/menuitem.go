package domain

import "time"

// PriceUnits is the unit a menu price is quoted in, e.g. $10 / dozen.
type PriceUnits string

const (
	PriceUnitEach  PriceUnits = "each"
	PriceUnitDozen PriceUnits = "dozen"
)

type MenuItem struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string       `gorm:"index;not null;column:name" json:"name"`
	CategoryID   uint         `gorm:"not null;column:category_id" json:"category_id"`
	Description  *string      `gorm:"column:description" json:"description"`
	Price        float64      `gorm:"not null;column:price" json:"price"`
	PriceUnits   PriceUnits   `gorm:"not null;column:price_units" json:"price_units"`
	DateCreated  time.Time    `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified time.Time    `gorm:"not null;autoUpdateTime" json:"date_modified"`
	Category     MenuCategory `gorm:"foreignKey:CategoryID" json:"category"`
}

func (MenuItem) TableName() string { return "menu_items" }

type MenuItemCreate struct {
	Name        string     `json:"name" binding:"required"`
	CategoryID  uint       `json:"category_id" binding:"required"`
	Description *string    `json:"description"`
	Price       float64    `json:"price" binding:"required,gt=0"`
	PriceUnits  PriceUnits `json:"price_units" binding:"required,oneof=each dozen"`
}

type MenuItemPatch struct {
	Name        *string     `json:"name"`
	CategoryID  *uint       `json:"category_id"`
	Description *string     `json:"description"`
	Price       *float64    `json:"price" binding:"omitempty,gt=0"`
	PriceUnits  *PriceUnits `json:"price_units" binding:"omitempty,oneof=each dozen"`
}

func (p MenuItemPatch) ApplyTo(mi *MenuItem) {
	if p.Name != nil {
		mi.Name = *p.Name
	}
	if p.CategoryID != nil {
		mi.CategoryID = *p.CategoryID
	}
	if p.Description != nil {
		mi.Description = p.Description
	}
	if p.Price != nil {
		mi.Price = *p.Price
	}
	if p.PriceUnits != nil {
		mi.PriceUnits = *p.PriceUnits
	}
}
