package domain

import "time"

type MenuCategory struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description  *string   `gorm:"column:description" json:"description"`
	DateCreated  time.Time `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified time.Time `gorm:"not null;autoUpdateTime" json:"date_modified"`
}

func (MenuCategory) TableName() string { return "menu_categories" }

type MenuCategoryCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type MenuCategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p MenuCategoryPatch) ApplyTo(mc *MenuCategory) {
	if p.Name != nil {
		mc.Name = *p.Name
	}
	if p.Description != nil {
		mc.Description = p.Description
	}
}
