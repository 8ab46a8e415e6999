package domain

import "time"

// Order is the aggregate root: it owns its order items and payments, which
// are always read and written as one consistent unit.
type Order struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID      uint      `gorm:"not null;column:customer_id" json:"customer_id"`
	CampaignID      *uint     `gorm:"column:campaign_id" json:"campaign_id"`
	DateOrdered     *Date     `gorm:"column:date_ordered" json:"date_ordered"`
	DateDelivered   *Date     `gorm:"column:date_delivered" json:"date_delivered"`
	PriceAdjustment float64   `gorm:"not null;default:0;column:price_adjustment" json:"price_adjustment"`
	Completed       bool      `gorm:"not null;default:false;column:completed" json:"completed"`
	Notes           *string   `gorm:"column:notes" json:"notes"`
	DateCreated     time.Time `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified    time.Time `gorm:"not null;autoUpdateTime" json:"date_modified"`

	Customer   Customer    `gorm:"foreignKey:CustomerID" json:"customer"`
	Campaign   *Campaign   `gorm:"foreignKey:CampaignID" json:"campaign"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	Payments   []Payment   `gorm:"foreignKey:OrderID" json:"payments"`
}

func (Order) TableName() string { return "orders" }

type OrderCreate struct {
	CustomerID      uint                `json:"customer_id" binding:"required"`
	CampaignID      *uint               `json:"campaign_id"`
	DateOrdered     *Date               `json:"date_ordered"`
	DateDelivered   *Date               `json:"date_delivered"`
	PriceAdjustment float64             `json:"price_adjustment"`
	Completed       bool                `json:"completed"`
	Notes           *string             `json:"notes"`
	OrderItems      []OrderItemNewOrder `json:"order_items" binding:"dive"`
	Payments        []PaymentNewOrder   `json:"payments" binding:"dive"`
}

type OrderPatch struct {
	CustomerID      *uint    `json:"customer_id"`
	CampaignID      *uint    `json:"campaign_id"`
	DateOrdered     *Date    `json:"date_ordered"`
	DateDelivered   *Date    `json:"date_delivered"`
	PriceAdjustment *float64 `json:"price_adjustment"`
	Completed       *bool    `json:"completed"`
	Notes           *string  `json:"notes"`
}

func (p OrderPatch) ApplyTo(o *Order) {
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.CampaignID != nil {
		o.CampaignID = p.CampaignID
	}
	if p.DateOrdered != nil {
		o.DateOrdered = p.DateOrdered
	}
	if p.DateDelivered != nil {
		o.DateDelivered = p.DateDelivered
	}
	if p.PriceAdjustment != nil {
		o.PriceAdjustment = *p.PriceAdjustment
	}
	if p.Completed != nil {
		o.Completed = *p.Completed
	}
	if p.Notes != nil {
		o.Notes = p.Notes
	}
}
