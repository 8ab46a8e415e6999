package domain

import "time"

// User is a staff login. Rows are provisioned out-of-band (cmd/seeduser),
// never through the API.
type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	HashedPassword string    `gorm:"not null;column:hashed_password" json:"-"`
	DateCreated    time.Time `gorm:"not null;autoCreateTime" json:"date_created"`
	DateModified   time.Time `gorm:"not null;autoUpdateTime" json:"date_modified"`
}

func (User) TableName() string { return "users" }
