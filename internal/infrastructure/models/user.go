package models

import "time"

// User is the persistence model for users
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	APIKey    string    `gorm:"column:api_key;uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
