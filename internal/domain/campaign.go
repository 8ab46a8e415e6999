package domain

import "time"

// Campaign is a promotional event orders can be attributed to, e.g. a
// December open house.
type Campaign struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description  string    `gorm:"not null;column:description" json:"description"`
	DateStart    *Date     `gorm:"column:date_start" json:"date_start"`
	DateEnd      *Date     `gorm:"column:date_end" json:"date_end"`
	DateCreated  time.Time `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified time.Time `gorm:"not null;autoUpdateTime" json:"date_modified"`
}

func (Campaign) TableName() string { return "campaigns" }

type CampaignCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	DateStart   *Date  `json:"date_start"`
	DateEnd     *Date  `json:"date_end"`
}

type CampaignPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DateStart   *Date   `json:"date_start"`
	DateEnd     *Date   `json:"date_end"`
}

func (p CampaignPatch) ApplyTo(cp *Campaign) {
	if p.Name != nil {
		cp.Name = *p.Name
	}
	if p.Description != nil {
		cp.Description = *p.Description
	}
	if p.DateStart != nil {
		cp.DateStart = p.DateStart
	}
	if p.DateEnd != nil {
		cp.DateEnd = p.DateEnd
	}
}
