package domain

import "time"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentZelle  PaymentMethod = "zelle"
	PaymentPaypal PaymentMethod = "paypal"
)

type Payment struct {
	ID           uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      uint          `gorm:"not null;column:order_id" json:"order_id"`
	Amount       float64       `gorm:"not null;column:amount" json:"amount"`
	Method       PaymentMethod `gorm:"not null;column:method" json:"method"`
	Date         Date          `gorm:"not null;column:date" json:"date"`
	DateCreated  time.Time     `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified time.Time     `gorm:"not null;autoUpdateTime" json:"date_modified"`
}

func (Payment) TableName() string { return "payments" }

// PaymentNewOrder is the payment shape inside an order-create payload.
type PaymentNewOrder struct {
	Amount float64       `json:"amount" binding:"required,gt=0"`
	Method PaymentMethod `json:"method" binding:"required,oneof=cash zelle paypal"`
	Date   Date          `json:"date" binding:"required"`
}

type PaymentCreate struct {
	OrderID uint `json:"order_id" binding:"required"`
	PaymentNewOrder
}

// PaymentPatch must carry the owning order id; edits that point at a
// different order than the stored row are rejected.
type PaymentPatch struct {
	OrderID uint           `json:"order_id" binding:"required"`
	Amount  *float64       `json:"amount" binding:"omitempty,gt=0"`
	Method  *PaymentMethod `json:"method" binding:"omitempty,oneof=cash zelle paypal"`
	Date    *Date          `json:"date"`
}

func (p PaymentPatch) ApplyTo(pm *Payment) {
	if p.Amount != nil {
		pm.Amount = *p.Amount
	}
	if p.Method != nil {
		pm.Method = *p.Method
	}
	if p.Date != nil {
		pm.Date = *p.Date
	}
}
