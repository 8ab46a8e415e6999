package domain

import "time"

type Customer struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"index;not null;column:name" json:"name"`
	Email        *string   `gorm:"uniqueIndex;column:email" json:"email"`
	Phone        *string   `gorm:"uniqueIndex;column:phone" json:"phone"`
	Notes        *string   `gorm:"column:notes" json:"notes"`
	DateCreated  time.Time `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified time.Time `gorm:"not null;autoUpdateTime" json:"date_modified"`
}

func (Customer) TableName() string { return "customers" }

// PhonePattern is the accepted phone format: (XXX) XXX-XXXX.
const PhonePattern = `^\(\d{3}\) \d{3}-\d{4}$`

type CustomerCreate struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,phone_number"`
	Notes *string `json:"notes"`
}

// CustomerPatch is a sparse update: nil fields are left untouched.
type CustomerPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,phone_number"`
	Notes *string `json:"notes"`
}

func (p CustomerPatch) ApplyTo(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.Phone != nil {
		c.Phone = p.Phone
	}
	if p.Notes != nil {
		c.Notes = p.Notes
	}
}
