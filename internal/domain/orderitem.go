package domain

import "time"

// OrderItem snapshots the menu price at order time; the charged price may
// differ from menu price * quantity (discounts, custom work).
type OrderItem struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      uint      `gorm:"not null;column:order_id" json:"order_id"`
	MenuItemID   uint      `gorm:"not null;column:menu_item_id" json:"menu_item_id"`
	Quantity     float64   `gorm:"not null;column:quantity" json:"quantity"`
	MenuPrice    float64   `gorm:"not null;column:menu_price" json:"menu_price"`
	ChargedPrice float64   `gorm:"not null;column:charged_price" json:"charged_price"`
	Notes        *string   `gorm:"column:notes" json:"notes"`
	DateCreated  time.Time `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified time.Time `gorm:"not null;autoUpdateTime" json:"date_modified"`

	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderItemNewOrder is the item shape inside an order-create payload, where
// the order id does not exist yet.
type OrderItemNewOrder struct {
	MenuItemID   uint    `json:"menu_item_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	MenuPrice    float64 `json:"menu_price" binding:"required,gt=0"`
	ChargedPrice float64 `json:"charged_price" binding:"required,gt=0"`
	Notes        *string `json:"notes"`
}

type OrderItemCreate struct {
	OrderID uint `json:"order_id" binding:"required"`
	OrderItemNewOrder
}

// OrderItemPatch must carry the owning order id; edits that point at a
// different order than the stored row are rejected.
type OrderItemPatch struct {
	OrderID      uint     `json:"order_id" binding:"required"`
	MenuItemID   *uint    `json:"menu_item_id"`
	Quantity     *float64 `json:"quantity" binding:"omitempty,gt=0"`
	MenuPrice    *float64 `json:"menu_price" binding:"omitempty,gt=0"`
	ChargedPrice *float64 `json:"charged_price" binding:"omitempty,gt=0"`
	Notes        *string  `json:"notes"`
}

func (p OrderItemPatch) ApplyTo(oi *OrderItem) {
	if p.MenuItemID != nil {
		oi.MenuItemID = *p.MenuItemID
	}
	if p.Quantity != nil {
		oi.Quantity = *p.Quantity
	}
	if p.MenuPrice != nil {
		oi.MenuPrice = *p.MenuPrice
	}
	if p.ChargedPrice != nil {
		oi.ChargedPrice = *p.ChargedPrice
	}
	if p.Notes != nil {
		oi.Notes = p.Notes
	}
}
