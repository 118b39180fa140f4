package models

import "time"

// Wallet is the persistence model for wallets
type Wallet struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Balance   int64  `gorm:"not null;default:0"`
	Address   string `gorm:"column:wallet_address;uniqueIndex;not null"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}

// TableName overrides the table name
func (Wallet) TableName() string {
	return "wallets"
}
